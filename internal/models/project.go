package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a single portfolio entry. The slug is derived from the title at
// creation time and recomputed whenever the title changes.
type Project struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title               string             `bson:"title" json:"title"`
	Slug                string             `bson:"slug" json:"slug"`
	Description         string             `bson:"description,omitempty" json:"description,omitempty"`
	DetailedDescription string             `bson:"detailedDescription" json:"detailedDescription"`
	ImageURL            string             `bson:"imageUrl" json:"imageUrl"`
	Featured            bool               `bson:"featured" json:"featured"`
	Tags                []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	LiveLink            string             `bson:"liveLink,omitempty" json:"liveLink,omitempty"`
	RepoLink            string             `bson:"repoLink,omitempty" json:"repoLink,omitempty"`
	Year                int                `bson:"year,omitempty" json:"year,omitempty"`
	Client              string             `bson:"client,omitempty" json:"client,omitempty"`
	Role                string             `bson:"role,omitempty" json:"role,omitempty"`
	Technologies        []string           `bson:"technologies,omitempty" json:"technologies,omitempty"`
	ImageHint           string             `bson:"imageHint,omitempty" json:"imageHint,omitempty"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
}

// ProjectInput carries the validated fields for creating a project.
type ProjectInput struct {
	Title               string
	Description         string
	DetailedDescription string
	ImageURL            string
	Featured            bool
	Tags                []string
	LiveLink            string
	RepoLink            string
	Year                int
	Client              string
	Role                string
	Technologies        []string
	ImageHint           string
}

// ProjectUpdate carries a partial update. Nil pointers mean "leave untouched";
// the image URL is only replaced when a new one was resolved.
type ProjectUpdate struct {
	Title               *string
	Description         *string
	DetailedDescription *string
	ImageURL            *string
	Featured            *bool
	Tags                []string
	LiveLink            *string
	RepoLink            *string
	Year                *int
	Client              *string
	Role                *string
	Technologies        []string
	ImageHint           *string
}

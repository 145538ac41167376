package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"musefolio/internal/database"
	"musefolio/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugInvalid    = regexp.MustCompile(`[^\w-]+`)
)

// Slugify derives a URL slug from a project title: lowercased, whitespace
// collapsed to hyphens, everything outside [0-9A-Za-z_-] stripped.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugInvalid.ReplaceAllString(slug, "")
	return slug
}

// slugBase returns the slug for a title, substituting a generated one when the
// title strips down to nothing (punctuation-only titles), so every project
// keeps a reachable detail route.
func slugBase(title string) string {
	if slug := strings.Trim(Slugify(title), "-"); slug != "" {
		return slug
	}
	return "project-" + uuid.NewString()[:8]
}

// ProjectStore handles CRUD for portfolio projects in MongoDB
type ProjectStore struct {
	collection *mongo.Collection
}

// NewProjectStore creates a new project store
func NewProjectStore(mongodb *database.MongoDB) *ProjectStore {
	return &ProjectStore{
		collection: mongodb.Collection(database.CollectionProjects),
	}
}

// List returns all projects, newest-created first.
func (s *ProjectStore) List(ctx context.Context) ([]models.Project, error) {
	return s.find(ctx, bson.M{})
}

// ListFeatured returns the projects flagged for the home page, newest first.
func (s *ProjectStore) ListFeatured(ctx context.Context) ([]models.Project, error) {
	return s.find(ctx, bson.M{"featured": true})
}

func (s *ProjectStore) find(ctx context.Context, filter bson.M) ([]models.Project, error) {
	cursor, err := s.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	return projects, nil
}

// GetByID returns a project by its identifier, or nil when it does not exist.
// A malformed identifier counts as not found, not as an error.
func (s *ProjectStore) GetByID(ctx context.Context, id string) (*models.Project, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Printf("⚠️ Invalid ObjectID for GetByID: %s", id)
		return nil, nil
	}

	var project models.Project
	err = s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

// GetBySlug returns a project by its slug, or nil when it does not exist.
func (s *ProjectStore) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	err := s.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project by slug: %w", err)
	}
	return &project, nil
}

// Add inserts a new project. The slug is computed from the title and
// disambiguated with a numeric suffix if another project already claims it.
func (s *ProjectStore) Add(ctx context.Context, input models.ProjectInput) (*models.Project, error) {
	slug, err := s.uniqueSlug(ctx, slugBase(input.Title), primitive.NilObjectID)
	if err != nil {
		return nil, err
	}

	project := models.Project{
		Title:               input.Title,
		Slug:                slug,
		Description:         input.Description,
		DetailedDescription: input.DetailedDescription,
		ImageURL:            input.ImageURL,
		Featured:            input.Featured,
		Tags:                input.Tags,
		LiveLink:            input.LiveLink,
		RepoLink:            input.RepoLink,
		Year:                input.Year,
		Client:              input.Client,
		Role:                input.Role,
		Technologies:        input.Technologies,
		ImageHint:           input.ImageHint,
		CreatedAt:           time.Now(),
	}

	result, err := s.collection.InsertOne(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	project.ID = result.InsertedID.(primitive.ObjectID)
	return &project, nil
}

// Update merges the supplied fields into an existing project and returns the
// updated document, or nil when no project matches. The slug is recomputed
// only when a new title is supplied.
func (s *ProjectStore) Update(ctx context.Context, id string, update models.ProjectUpdate) (*models.Project, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Printf("⚠️ Invalid ObjectID for Update: %s", id)
		return nil, nil
	}

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
		slug, err := s.uniqueSlug(ctx, slugBase(*update.Title), objectID)
		if err != nil {
			return nil, err
		}
		set["slug"] = slug
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.DetailedDescription != nil {
		set["detailedDescription"] = *update.DetailedDescription
	}
	if update.ImageURL != nil {
		set["imageUrl"] = *update.ImageURL
	}
	if update.Featured != nil {
		set["featured"] = *update.Featured
	}
	if update.Tags != nil {
		set["tags"] = update.Tags
	}
	if update.LiveLink != nil {
		set["liveLink"] = *update.LiveLink
	}
	if update.RepoLink != nil {
		set["repoLink"] = *update.RepoLink
	}
	if update.Year != nil {
		set["year"] = *update.Year
	}
	if update.Client != nil {
		set["client"] = *update.Client
	}
	if update.Role != nil {
		set["role"] = *update.Role
	}
	if update.Technologies != nil {
		set["technologies"] = update.Technologies
	}
	if update.ImageHint != nil {
		set["imageHint"] = *update.ImageHint
	}

	if len(set) == 0 {
		return s.GetByID(ctx, id)
	}

	var project models.Project
	err = s.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &project, nil
}

// Delete removes a project by identifier. Returns true iff exactly one
// document was removed; a malformed or unknown identifier returns false.
func (s *ProjectStore) Delete(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Printf("⚠️ Invalid ObjectID for Delete: %s", id)
		return false, nil
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	return result.DeletedCount == 1, nil
}

// uniqueSlug appends -2, -3, ... until the slug is unclaimed by any other
// project. Concurrent creators racing on the same title are caught by the
// unique index on slug.
func (s *ProjectStore) uniqueSlug(ctx context.Context, base string, exclude primitive.ObjectID) (string, error) {
	candidate := base
	for i := 2; ; i++ {
		filter := bson.M{"slug": candidate}
		if exclude != primitive.NilObjectID {
			filter["_id"] = bson.M{"$ne": exclude}
		}

		err := s.collection.FindOne(ctx, filter).Err()
		if err == mongo.ErrNoDocuments {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check slug uniqueness: %w", err)
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

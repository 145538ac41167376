package services

import (
	"testing"

	"musefolio/internal/models"
)

func TestToDocumentKeepsEmptyLists(t *testing.T) {
	doc, err := toDocument(models.AboutPageContent{
		MainTitle:       "About Me",
		SkillItems:      []models.SkillItem{},
		ExperienceItems: []models.ExperienceItem{},
	})
	if err != nil {
		t.Fatalf("toDocument failed: %v", err)
	}

	if _, ok := doc["skillItems"]; !ok {
		t.Error("Expected empty skillItems to survive into the update document")
	}
	if _, ok := doc["experienceItems"]; !ok {
		t.Error("Expected empty experienceItems to survive into the update document")
	}
}

func TestWithKeySetsID(t *testing.T) {
	doc, err := withKey(models.ContentKeyHome, models.DefaultHomePageContent())
	if err != nil {
		t.Fatalf("withKey failed: %v", err)
	}
	if doc["_id"] != models.ContentKeyHome {
		t.Errorf("Expected _id %q, got %v", models.ContentKeyHome, doc["_id"])
	}
}

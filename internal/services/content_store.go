package services

import (
	"context"
	"fmt"

	"musefolio/internal/database"
	"musefolio/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContentStore handles the named singleton content documents (home, about,
// contact). Each document is keyed by its logical page name as the string _id
// and is seeded with its default value on first read.
type ContentStore struct {
	collection *mongo.Collection
}

// NewContentStore creates a new content store
func NewContentStore(mongodb *database.MongoDB) *ContentStore {
	return &ContentStore{
		collection: mongodb.Collection(database.CollectionContent),
	}
}

// get looks up the singleton with the given key, seeding it with defaultValue
// when absent. The seed is idempotent: a concurrent first read that loses the
// insert race falls back to reading the winner's document.
func (s *ContentStore) get(ctx context.Context, key string, defaultValue, out interface{}) error {
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(out)
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return fmt.Errorf("failed to get content %q: %w", key, err)
	}

	doc, err := withKey(key, defaultValue)
	if err != nil {
		return err
	}
	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to seed content %q: %w", key, err)
		}
		// Another request seeded it first; read theirs.
		if err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(out); err != nil {
			return fmt.Errorf("failed to re-read seeded content %q: %w", key, err)
		}
		return nil
	}

	return assign(defaultValue, out)
}

// update upsert-replaces the fields of newContent into the singleton, then
// re-reads the persisted document so the caller gets the stored truth back.
// Callers must supply the complete merged document, not a patch.
func (s *ContentStore) update(ctx context.Context, key string, newContent, out interface{}) error {
	fields, err := toDocument(newContent)
	if err != nil {
		return err
	}

	_, err = s.collection.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to update content %q: %w", key, err)
	}

	if err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(out); err != nil {
		return fmt.Errorf("failed to re-read content %q: %w", key, err)
	}
	return nil
}

// GetHome returns the home page content, seeding the default on first read.
func (s *ContentStore) GetHome(ctx context.Context) (models.HomePageContent, error) {
	var content models.HomePageContent
	err := s.get(ctx, models.ContentKeyHome, models.DefaultHomePageContent(), &content)
	return content, err
}

// UpdateHome replaces the home page content and returns the persisted document.
func (s *ContentStore) UpdateHome(ctx context.Context, content models.HomePageContent) (models.HomePageContent, error) {
	var updated models.HomePageContent
	err := s.update(ctx, models.ContentKeyHome, content, &updated)
	return updated, err
}

// GetAbout returns the about page content, seeding the default on first read.
func (s *ContentStore) GetAbout(ctx context.Context) (models.AboutPageContent, error) {
	var content models.AboutPageContent
	err := s.get(ctx, models.ContentKeyAbout, models.DefaultAboutPageContent(), &content)
	return content, err
}

// UpdateAbout replaces the about page content and returns the persisted document.
func (s *ContentStore) UpdateAbout(ctx context.Context, content models.AboutPageContent) (models.AboutPageContent, error) {
	var updated models.AboutPageContent
	err := s.update(ctx, models.ContentKeyAbout, content, &updated)
	return updated, err
}

// GetContact returns the contact page content, seeding the default on first read.
func (s *ContentStore) GetContact(ctx context.Context) (models.ContactPageContent, error) {
	var content models.ContactPageContent
	err := s.get(ctx, models.ContentKeyContact, models.DefaultContactPageContent(), &content)
	return content, err
}

// UpdateContact replaces the contact page content and returns the persisted document.
func (s *ContentStore) UpdateContact(ctx context.Context, content models.ContactPageContent) (models.ContactPageContent, error) {
	var updated models.ContactPageContent
	err := s.update(ctx, models.ContentKeyContact, content, &updated)
	return updated, err
}

// toDocument converts a content struct to a bson map via its bson tags.
func toDocument(content interface{}) (bson.M, error) {
	raw, err := bson.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal content: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal content: %w", err)
	}
	return doc, nil
}

// withKey returns the content document with the singleton key as its _id.
func withKey(key string, content interface{}) (bson.M, error) {
	doc, err := toDocument(content)
	if err != nil {
		return nil, err
	}
	doc["_id"] = key
	return doc, nil
}

// assign round-trips value into out through bson, so the seeded default is
// returned through the same decode path as a stored document.
func assign(value, out interface{}) error {
	raw, err := bson.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal default content: %w", err)
	}
	if err := bson.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode default content: %w", err)
	}
	return nil
}

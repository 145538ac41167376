package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"musefolio/internal/database"
	"musefolio/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageStore handles inbound contact-form submissions in MongoDB
type MessageStore struct {
	collection *mongo.Collection
}

// NewMessageStore creates a new message store
func NewMessageStore(mongodb *database.MongoDB) *MessageStore {
	return &MessageStore{
		collection: mongodb.Collection(database.CollectionMessages),
	}
}

// Add inserts a new contact message, unread and timestamped at insertion.
func (s *MessageStore) Add(ctx context.Context, name, email, subject, message string) (*models.ContactMessage, error) {
	msg := models.ContactMessage{
		Name:        name,
		Email:       email,
		Subject:     subject,
		Message:     message,
		SubmittedAt: time.Now(),
		IsRead:      false,
	}

	result, err := s.collection.InsertOne(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	msg.ID = result.InsertedID.(primitive.ObjectID)
	return &msg, nil
}

// List returns all messages, newest-submitted first.
func (s *MessageStore) List(ctx context.Context) ([]models.ContactMessage, error) {
	cursor, err := s.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode contact messages: %w", err)
	}
	return messages, nil
}

// MarkRead flags a message as read. Strict changed-count semantics: returns
// true iff the flag actually flipped, so re-marking an already-read message
// returns false.
func (s *MessageStore) MarkRead(ctx context.Context, id string) (bool, error) {
	return s.setRead(ctx, id, true)
}

// MarkUnread flags a message as unread, with the same changed-count semantics
// as MarkRead.
func (s *MessageStore) MarkUnread(ctx context.Context, id string) (bool, error) {
	return s.setRead(ctx, id, false)
}

func (s *MessageStore) setRead(ctx context.Context, id string, read bool) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Printf("⚠️ Invalid ObjectID for message read toggle: %s", id)
		return false, nil
	}

	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"isRead": read}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to update message read state: %w", err)
	}
	return result.ModifiedCount == 1, nil
}

// Delete removes a message by identifier. Returns true iff exactly one
// document was removed.
func (s *MessageStore) Delete(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Printf("⚠️ Invalid ObjectID for message delete: %s", id)
		return false, nil
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, fmt.Errorf("failed to delete message: %w", err)
	}
	return result.DeletedCount == 1, nil
}

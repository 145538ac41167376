package database

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDB wraps the MongoDB client and database
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	dbName   string
}

// Collection names
const (
	CollectionProjects = "projects"
	CollectionMessages = "contact_messages"
	CollectionContent  = "musefolio_content"
)

// NewMongoDB creates a new MongoDB connection with connection pooling. The
// returned handle is shared by every store and is safe for concurrent use.
func NewMongoDB(uri string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(30 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	dbName := extractDBName(uri)

	db := &MongoDB{
		client:   client,
		database: client.Database(dbName),
		dbName:   dbName,
	}

	log.Printf("✅ Connected to MongoDB database: %s", dbName)

	return db, nil
}

// extractDBName extracts the database name from a MongoDB URI. A URI without
// a path segment (mongodb://host:port) falls back to the default name.
func extractDBName(uri string) string {
	// mongodb://localhost:27017/musefolio_db?authSource=admin -> musefolio_db
	parsed, err := url.Parse(uri)
	if err != nil {
		return "musefolio_db"
	}

	name := strings.TrimPrefix(parsed.Path, "/")
	if name == "" {
		return "musefolio_db"
	}
	return name
}

// Initialize creates indexes for all collections
func (m *MongoDB) Initialize(ctx context.Context) error {
	log.Println("📦 Initializing MongoDB indexes...")

	// Projects: slugs must stay unique among live projects, and the featured
	// filter backs the home page query.
	if err := m.createIndexes(ctx, CollectionProjects, []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "featured", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}); err != nil {
		return fmt.Errorf("failed to create projects indexes: %w", err)
	}

	// Contact messages: inbox lists newest first and filters by read state.
	if err := m.createIndexes(ctx, CollectionMessages, []mongo.IndexModel{
		{Keys: bson.D{{Key: "submittedAt", Value: -1}}},
		{Keys: bson.D{{Key: "isRead", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create contact_messages indexes: %w", err)
	}

	// Content singletons are keyed by their string _id; no extra indexes needed.

	log.Println("✅ MongoDB indexes initialized successfully")
	return nil
}

// createIndexes creates indexes for a collection
func (m *MongoDB) createIndexes(ctx context.Context, collectionName string, indexes []mongo.IndexModel) error {
	collection := m.database.Collection(collectionName)
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// Collection returns a collection handle
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// Client returns the underlying MongoDB client
func (m *MongoDB) Client() *mongo.Client {
	return m.client
}

// Database returns the underlying MongoDB database
func (m *MongoDB) Database() *mongo.Database {
	return m.database
}

// Close closes the MongoDB connection
func (m *MongoDB) Close(ctx context.Context) error {
	log.Println("🔌 Closing MongoDB connection...")
	return m.client.Disconnect(ctx)
}

// Ping checks if the database connection is alive
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

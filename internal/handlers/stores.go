package handlers

import (
	"context"

	"musefolio/internal/models"
)

// Store interfaces consumed by the handlers. The Mongo-backed implementations
// live in internal/services; tests substitute in-memory fakes.

// ProjectStore is the portfolio project collection.
type ProjectStore interface {
	List(ctx context.Context) ([]models.Project, error)
	ListFeatured(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	Add(ctx context.Context, input models.ProjectInput) (*models.Project, error)
	Update(ctx context.Context, id string, update models.ProjectUpdate) (*models.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ContentStore is the named singleton content documents.
type ContentStore interface {
	GetHome(ctx context.Context) (models.HomePageContent, error)
	UpdateHome(ctx context.Context, content models.HomePageContent) (models.HomePageContent, error)
	GetAbout(ctx context.Context) (models.AboutPageContent, error)
	UpdateAbout(ctx context.Context, content models.AboutPageContent) (models.AboutPageContent, error)
	GetContact(ctx context.Context) (models.ContactPageContent, error)
	UpdateContact(ctx context.Context, content models.ContactPageContent) (models.ContactPageContent, error)
}

// MessageStore is the contact-message inbox.
type MessageStore interface {
	Add(ctx context.Context, name, email, subject, message string) (*models.ContactMessage, error)
	List(ctx context.Context) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (bool, error)
	MarkUnread(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PageCache receives the stale-route signal after mutations and caches public
// responses between them.
type PageCache interface {
	Get(route string) (interface{}, bool)
	Set(route string, value interface{})
	Invalidate(routes ...string)
}

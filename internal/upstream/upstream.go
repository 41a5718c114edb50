package upstream

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/travel-content-admin/internal/config"
	"github.com/travel-content-admin/internal/models"
	"github.com/travel-content-admin/internal/session"
)

// BlogAPI defines the interface for blog operations
type BlogAPI interface {
	List(ctx context.Context) ([]models.Blog, error)
	Get(ctx context.Context, id string) (*models.Blog, error)
	Create(ctx context.Context, payload map[string]interface{}) (*models.Blog, error)
	Update(ctx context.Context, id string, payload map[string]interface{}) (*models.Blog, error)
	Delete(ctx context.Context, id string) error
}

// CollectionAPI defines the interface for collection operations
type CollectionAPI interface {
	List(ctx context.Context) ([]models.Collection, error)
	Get(ctx context.Context, id string) (*models.Collection, error)
	Create(ctx context.Context, payload map[string]interface{}) (*models.Collection, error)
	Update(ctx context.Context, id string, payload map[string]interface{}) (*models.Collection, error)
	Delete(ctx context.Context, id string) error
}

// CollectionContentAPI defines the interface for collection content operations
type CollectionContentAPI interface {
	List(ctx context.Context) ([]models.CollectionContent, error)
	ListByCollection(ctx context.Context, collectionID string) ([]models.CollectionContent, error)
	Get(ctx context.Context, id string) (*models.CollectionContent, error)
	Create(ctx context.Context, payload map[string]interface{}) (*models.CollectionContent, error)
	Update(ctx context.Context, id string, payload map[string]interface{}) (*models.CollectionContent, error)
	Delete(ctx context.Context, id string) error
}

// ExperienceAPI defines the interface for experience operations
type ExperienceAPI interface {
	List(ctx context.Context) ([]models.Experience, error)
	Get(ctx context.Context, id string) (*models.Experience, error)
	Create(ctx context.Context, payload map[string]interface{}) (*models.Experience, error)
	Update(ctx context.Context, id string, payload map[string]interface{}) (*models.Experience, error)
	Delete(ctx context.Context, id string) error
}

// TagAPI defines the interface for tag operations
type TagAPI interface {
	List(ctx context.Context) ([]models.Tag, error)
	Create(ctx context.Context, name string) (*models.Tag, error)
	Delete(ctx context.Context, id string) error
}

// ContactAPI defines the interface for contact inquiry operations
type ContactAPI interface {
	List(ctx context.Context) ([]models.ContactInquiry, error)
	Get(ctx context.Context, id string) (*models.ContactInquiry, error)
	Delete(ctx context.Context, id string) error
}

// AuthAPI defines the interface for auth operations
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*session.Session, error)
	Logout(ctx context.Context) error
}

// HealthAPI defines the interface for the backend health check
type HealthAPI interface {
	Check(ctx context.Context) (*HealthStatus, error)
}

// Clients holds all resource client interfaces
type Clients struct {
	Blogs       BlogAPI
	Collections CollectionAPI
	Contents    CollectionContentAPI
	Experiences ExperienceAPI
	Tags        TagAPI
	Contacts    ContactAPI
	Auth        AuthAPI
	Health      HealthAPI
}

// NewClients creates all resource clients over one shared core
func NewClients(cfg *config.UpstreamConfig, sessions *session.Store, log zerolog.Logger) *Clients {
	core := NewClient(cfg, sessions, log)

	return &Clients{
		Blogs:       &BlogClient{c: core},
		Collections: &CollectionClient{c: core},
		Contents:    &CollectionContentClient{c: core},
		Experiences: &ExperienceClient{c: core},
		Tags:        &TagClient{c: core},
		Contacts:    &ContactClient{c: core},
		Auth:        &AuthClient{c: core, sessions: sessions},
		Health:      &HealthClient{c: core},
	}
}

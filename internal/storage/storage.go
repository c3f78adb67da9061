// Package storage defines the persistence contracts for atelier.
//
// Interfaces here are the seams between domain services and the SQLite
// adapter; tests substitute in-memory implementations through them.
package storage

import (
	"context"
	"time"

	"github.com/louisbranch/atelier/internal/auth/identity"
	"github.com/louisbranch/atelier/internal/gallery"
	"github.com/louisbranch/atelier/internal/objects"
	"github.com/louisbranch/atelier/internal/platform/errors"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New(errors.CodeNotFound, "record not found")

// ErrDuplicateUsername indicates a unique-constrained identity insert conflict.
var ErrDuplicateUsername = errors.New(errors.CodeDuplicateUsername, "username already exists")

// Session binds an opaque session token to an identity with a fixed expiry.
type Session struct {
	ID         string
	IdentityID string
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// IdentityStore persists identity records.
//
// Nothing outside the auth boundary reads the stored password hash; the
// store only moves it between the database and the verifier.
type IdentityStore interface {
	PutIdentity(ctx context.Context, ident identity.Identity) error
	GetIdentity(ctx context.Context, identityID string) (identity.Identity, error)
	FindIdentityByUsername(ctx context.Context, username string) (identity.Identity, error)
	UpdatePasswordHash(ctx context.Context, identityID, passwordHash string) error
}

// SessionStore persists server-side session records.
type SessionStore interface {
	PutSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, sessionID string) (Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// ObjectStore persists uploaded media objects and their access policy.
type ObjectStore interface {
	PutObject(ctx context.Context, obj objects.Object) error
	GetObject(ctx context.Context, objectID string) (objects.Object, error)
	DeleteObject(ctx context.Context, objectID string) error
}

// GalleryStore persists projects, project images, and site settings.
type GalleryStore interface {
	ListProjects(ctx context.Context) ([]gallery.Project, error)
	GetProject(ctx context.Context, projectID string) (gallery.Project, error)
	PutProject(ctx context.Context, project gallery.Project) error
	DeleteProject(ctx context.Context, projectID string) error

	ListProjectImages(ctx context.Context, projectID string) ([]gallery.ProjectImage, error)
	PutProjectImage(ctx context.Context, image gallery.ProjectImage) error
	DeleteProjectImage(ctx context.Context, imageID string) error
	UpdateProjectImageOrder(ctx context.Context, imageID string, sortOrder int) error

	GetSiteSettings(ctx context.Context) (gallery.SiteSettings, error)
	PutSiteSettings(ctx context.Context, settings gallery.SiteSettings) error
}

// Store is the full persistence contract backing the server.
type Store interface {
	IdentityStore
	SessionStore
	ObjectStore
	GalleryStore
	Close() error
}

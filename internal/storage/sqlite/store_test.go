package sqlite

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/atelier/internal/auth/identity"
	"github.com/louisbranch/atelier/internal/gallery"
	"github.com/louisbranch/atelier/internal/objects"
	"github.com/louisbranch/atelier/internal/storage"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "atelier.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func testIdentity(id, username string, at time.Time) identity.Identity {
	return identity.Identity{
		ID:           id,
		Username:     username,
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
		CreatedAt:    at,
		UpdatedAt:    at,
	}
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestIdentityRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	ident := identity.Identity{
		ID:           "id-1",
		Username:     "admin",
		PasswordHash: "$2a$10$hash",
		Email:        "admin@example.com",
		FirstName:    "Ada",
		LastName:     "Admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := store.PutIdentity(context.Background(), ident); err != nil {
		t.Fatalf("put identity: %v", err)
	}

	got, err := store.GetIdentity(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("get identity: %v", err)
	}
	if got.ID != ident.ID || got.Username != ident.Username || got.PasswordHash != ident.PasswordHash {
		t.Fatalf("identity = %+v, want %+v", got, ident)
	}
	if got.Email != ident.Email || got.FirstName != ident.FirstName || got.LastName != ident.LastName {
		t.Fatalf("identity profile = %+v, want %+v", got, ident)
	}
	if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
		t.Fatalf("identity timestamps = %v/%v, want %v", got.CreatedAt, got.UpdatedAt, now)
	}

	byName, err := store.FindIdentityByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("find identity: %v", err)
	}
	if byName.ID != "id-1" {
		t.Fatalf("found id = %q, want id-1", byName.ID)
	}
}

func TestPutIdentityDuplicateUsername(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	if err := store.PutIdentity(context.Background(), testIdentity("id-1", "admin", now)); err != nil {
		t.Fatalf("put first identity: %v", err)
	}
	err := store.PutIdentity(context.Background(), testIdentity("id-2", "admin", now))
	if !errors.Is(err, storage.ErrDuplicateUsername) {
		t.Fatalf("duplicate insert error = %v, want %v", err, storage.ErrDuplicateUsername)
	}
}

func TestGetIdentityNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.GetIdentity(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get missing identity error = %v, want %v", err, storage.ErrNotFound)
	}
	if _, err := store.FindIdentityByUsername(context.Background(), "nobody"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("find missing identity error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestUpdatePasswordHash(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	if err := store.PutIdentity(context.Background(), testIdentity("id-1", "admin", now)); err != nil {
		t.Fatalf("put identity: %v", err)
	}

	if err := store.UpdatePasswordHash(context.Background(), "id-1", "$2a$10$rotated"); err != nil {
		t.Fatalf("update password hash: %v", err)
	}
	got, err := store.GetIdentity(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("get identity: %v", err)
	}
	if got.PasswordHash != "$2a$10$rotated" {
		t.Fatalf("password hash = %q, want rotated value", got.PasswordHash)
	}
	if !got.UpdatedAt.After(now) {
		t.Fatal("expected updated_at to advance on rotation")
	}

	err = store.UpdatePasswordHash(context.Background(), "missing", "$2a$10$x")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("update missing identity error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	if err := store.PutIdentity(context.Background(), testIdentity("id-1", "admin", now)); err != nil {
		t.Fatalf("put identity: %v", err)
	}

	session := storage.Session{
		ID:         "tok-1",
		IdentityID: "id-1",
		CreatedAt:  now,
		ExpiresAt:  now.Add(7 * 24 * time.Hour),
	}
	if err := store.PutSession(context.Background(), session); err != nil {
		t.Fatalf("put session: %v", err)
	}

	got, err := store.GetSession(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.ID != session.ID || got.IdentityID != session.IdentityID {
		t.Fatalf("session = %+v, want %+v", got, session)
	}
	if !got.CreatedAt.Equal(session.CreatedAt) || !got.ExpiresAt.Equal(session.ExpiresAt) {
		t.Fatalf("session timestamps = %v/%v, want %v/%v", got.CreatedAt, got.ExpiresAt, session.CreatedAt, session.ExpiresAt)
	}

	if err := store.DeleteSession(context.Background(), "tok-1"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := store.GetSession(context.Background(), "tok-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get deleted session error = %v, want %v", err, storage.ErrNotFound)
	}
	// Deleting again must stay a no-op.
	if err := store.DeleteSession(context.Background(), "tok-1"); err != nil {
		t.Fatalf("repeat delete session: %v", err)
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	if err := store.PutIdentity(context.Background(), testIdentity("id-1", "admin", now)); err != nil {
		t.Fatalf("put identity: %v", err)
	}

	expired := storage.Session{ID: "tok-old", IdentityID: "id-1", CreatedAt: now.Add(-8 * 24 * time.Hour), ExpiresAt: now.Add(-24 * time.Hour)}
	atBoundary := storage.Session{ID: "tok-edge", IdentityID: "id-1", CreatedAt: now.Add(-7 * 24 * time.Hour), ExpiresAt: now}
	live := storage.Session{ID: "tok-live", IdentityID: "id-1", CreatedAt: now, ExpiresAt: now.Add(7 * 24 * time.Hour)}
	for _, session := range []storage.Session{expired, atBoundary, live} {
		if err := store.PutSession(context.Background(), session); err != nil {
			t.Fatalf("put session %s: %v", session.ID, err)
		}
	}

	removed, err := store.DeleteExpiredSessions(context.Background(), now)
	if err != nil {
		t.Fatalf("delete expired sessions: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	if _, err := store.GetSession(context.Background(), "tok-live"); err != nil {
		t.Fatalf("live session should survive purge: %v", err)
	}
}

func TestObjectRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	data := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	obj := objects.Object{
		ID:          "obj-1",
		Filename:    "hero.jpg",
		ContentType: "image/jpeg",
		Data:        data,
		Size:        int64(len(data)),
		OwnerID:     "id-1",
		Visibility:  objects.VisibilityPrivate,
		CreatedAt:   now,
	}
	if err := store.PutObject(context.Background(), obj); err != nil {
		t.Fatalf("put object: %v", err)
	}

	got, err := store.GetObject(context.Background(), "obj-1")
	if err != nil {
		t.Fatalf("get object: %v", err)
	}
	if !bytes.Equal(got.Data, data) {
		t.Fatalf("data = %v, want %v", got.Data, data)
	}
	if got.Visibility != objects.VisibilityPrivate {
		t.Fatalf("visibility = %q, want private", got.Visibility)
	}
	if got.Size != obj.Size || got.Filename != obj.Filename || got.ContentType != obj.ContentType || got.OwnerID != obj.OwnerID {
		t.Fatalf("object metadata mismatch: %+v", got)
	}

	if err := store.DeleteObject(context.Background(), "obj-1"); err != nil {
		t.Fatalf("delete object: %v", err)
	}
	if _, err := store.GetObject(context.Background(), "obj-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get deleted object error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestProjectUpsertAndOrdering(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	older := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)

	first := gallery.Project{ID: "p-1", Title: "First", CreatedAt: older, UpdatedAt: older}
	second := gallery.Project{ID: "p-2", Title: "Second", Category: "print", Year: 2025, CoverImageURL: "/api/files/cover", SortOrder: 7, CreatedAt: newer, UpdatedAt: newer}
	if err := store.PutProject(context.Background(), first); err != nil {
		t.Fatalf("put first project: %v", err)
	}
	if err := store.PutProject(context.Background(), second); err != nil {
		t.Fatalf("put second project: %v", err)
	}

	projects, err := store.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(projects) != 2 || projects[0].ID != "p-2" || projects[1].ID != "p-1" {
		t.Fatalf("expected newest-first listing, got %+v", projects)
	}
	if projects[0].CoverImageURL != "/api/files/cover" || projects[0].SortOrder != 7 {
		t.Fatalf("cover fields lost in round trip: %+v", projects[0])
	}

	first.Title = "First, Revised"
	first.UpdatedAt = newer
	if err := store.PutProject(context.Background(), first); err != nil {
		t.Fatalf("upsert project: %v", err)
	}
	got, err := store.GetProject(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if got.Title != "First, Revised" {
		t.Fatalf("title = %q, want revised", got.Title)
	}
	if !got.CreatedAt.Equal(older) {
		t.Fatalf("created_at changed on upsert: %v", got.CreatedAt)
	}
}

func TestDeleteProjectCascadesImages(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	project := gallery.Project{ID: "p-1", Title: "P", CreatedAt: now, UpdatedAt: now}
	if err := store.PutProject(context.Background(), project); err != nil {
		t.Fatalf("put project: %v", err)
	}
	image := gallery.ProjectImage{ID: "img-1", ProjectID: "p-1", ImageURL: "/api/files/a", SortOrder: 1, CreatedAt: now}
	if err := store.PutProjectImage(context.Background(), image); err != nil {
		t.Fatalf("put project image: %v", err)
	}

	if err := store.DeleteProject(context.Background(), "p-1"); err != nil {
		t.Fatalf("delete project: %v", err)
	}
	images, err := store.ListProjectImages(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("list project images: %v", err)
	}
	if len(images) != 0 {
		t.Fatalf("expected cascade delete, got %d images", len(images))
	}
}

func TestProjectImageOrdering(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	if err := store.PutProject(context.Background(), gallery.Project{ID: "p-1", Title: "P", CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("put project: %v", err)
	}
	a := gallery.ProjectImage{ID: "img-a", ProjectID: "p-1", ImageURL: "/api/files/a", ImageType: gallery.ImageTypeBefore, SortOrder: 1, CreatedAt: now}
	b := gallery.ProjectImage{ID: "img-b", ProjectID: "p-1", ImageURL: "/api/files/b", ImageType: gallery.ImageTypeGallery, SortOrder: 2, CreatedAt: now}
	for _, image := range []gallery.ProjectImage{a, b} {
		if err := store.PutProjectImage(context.Background(), image); err != nil {
			t.Fatalf("put image %s: %v", image.ID, err)
		}
	}

	if err := store.UpdateProjectImageOrder(context.Background(), "img-a", 3); err != nil {
		t.Fatalf("update image order: %v", err)
	}
	images, err := store.ListProjectImages(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("list project images: %v", err)
	}
	if len(images) != 2 || images[0].ID != "img-b" || images[1].ID != "img-a" {
		t.Fatalf("expected img-b then img-a, got %+v", images)
	}
	if images[1].ImageType != gallery.ImageTypeBefore {
		t.Fatalf("image type lost in round trip: %+v", images[1])
	}

	err = store.UpdateProjectImageOrder(context.Background(), "missing", 1)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("reorder missing image error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestSiteSettingsSingleton(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.GetSiteSettings(context.Background()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get missing settings error = %v, want %v", err, storage.ErrNotFound)
	}

	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	if err := store.PutSiteSettings(context.Background(), gallery.SiteSettings{HeroImageURL: "/api/files/hero", UpdatedAt: now}); err != nil {
		t.Fatalf("put settings: %v", err)
	}
	if err := store.PutSiteSettings(context.Background(), gallery.SiteSettings{HeroImageURL: "/api/files/hero-2", UpdatedAt: now.Add(time.Hour)}); err != nil {
		t.Fatalf("upsert settings: %v", err)
	}

	got, err := store.GetSiteSettings(context.Background())
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if got.HeroImageURL != "/api/files/hero-2" {
		t.Fatalf("hero url = %q, want /api/files/hero-2", got.HeroImageURL)
	}
}

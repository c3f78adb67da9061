// Package bootstrap provisions the reserved admin identity at startup.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/louisbranch/atelier/internal/auth/identity"
	"github.com/louisbranch/atelier/internal/auth/password"
	apperrors "github.com/louisbranch/atelier/internal/platform/errors"
	"github.com/louisbranch/atelier/internal/storage"
)

const (
	// AdminUsername is the reserved username for the bootstrap identity.
	AdminUsername = "admin"
	// PlaceholderPassword is the well-known development-only default.
	PlaceholderPassword = "admin123"
)

// ErrWeakAdminCredential is fatal at startup: a production process must never
// serve traffic while the admin credential is absent or the known default.
var ErrWeakAdminCredential = apperrors.New(
	apperrors.CodeWeakAdminCredential,
	"admin password must be set to a strong value in production",
)

// Config holds the inputs for the admin bootstrap guard.
type Config struct {
	// AdminPassword is the operator-configured password; may be empty.
	AdminPassword string
	// Production indicates the deployment mode which forbids the placeholder.
	Production bool
}

// EnsureAdmin runs the startup guard against the identity store.
//
// It must run before the process accepts traffic and at most once per process
// lifetime. Concurrent process starts are serialized through the store's
// unique username constraint, not in-memory locking.
//
// Behavior:
//   - production with a missing or placeholder password fails startup
//   - development without a password falls back to the placeholder, loudly
//   - a missing admin identity is created with the effective password
//   - an admin still holding the placeholder is rotated when a different
//     password is now configured, or fails startup in production
//   - an admin with a customized password is left untouched; rotation of a
//     non-placeholder credential is deliberately out of reach of env config
func EnsureAdmin(ctx context.Context, store storage.IdentityStore, cfg Config) error {
	if store == nil {
		return fmt.Errorf("identity store is not configured")
	}

	if cfg.Production && (cfg.AdminPassword == "" || cfg.AdminPassword == PlaceholderPassword) {
		log.Printf("SECURITY: ADMIN_PASSWORD must be set to a strong password in production")
		log.Printf("SECURITY: current value is unset or the default %q", PlaceholderPassword)
		return ErrWeakAdminCredential
	}

	effective := cfg.AdminPassword
	if effective == "" {
		effective = PlaceholderPassword
		log.Printf("WARNING: using default admin password %q", PlaceholderPassword)
		log.Printf("WARNING: set ADMIN_PASSWORD to use a custom password")
		log.Printf("WARNING: the default is only allowed in development mode")
	}

	admin, err := store.FindIdentityByUsername(ctx, AdminUsername)
	if errors.Is(err, storage.ErrNotFound) {
		createErr := createAdmin(ctx, store, effective)
		if createErr == nil {
			log.Printf("admin identity created")
			return nil
		}
		if !errors.Is(createErr, storage.ErrDuplicateUsername) {
			return createErr
		}
		// Lost a double-bootstrap race; the surviving row still has to pass
		// the placeholder checks below.
		admin, err = store.FindIdentityByUsername(ctx, AdminUsername)
		if err != nil {
			return fmt.Errorf("reload admin identity: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("find admin identity: %w", err)
	}

	if !password.Verify(PlaceholderPassword, admin.PasswordHash) {
		// Customized credential: nothing to do.
		return nil
	}

	if cfg.AdminPassword != "" && cfg.AdminPassword != PlaceholderPassword {
		hash, hashErr := password.Hash(cfg.AdminPassword)
		if hashErr != nil {
			return hashErr
		}
		if err := store.UpdatePasswordHash(ctx, admin.ID, hash); err != nil {
			return fmt.Errorf("rotate admin password hash: %w", err)
		}
		log.Printf("admin password updated from default to custom password")
		return nil
	}

	if cfg.Production {
		log.Printf("SECURITY: admin identity exists with the default password %q", PlaceholderPassword)
		log.Printf("SECURITY: set ADMIN_PASSWORD to rotate it to a secure password")
		return ErrWeakAdminCredential
	}

	return nil
}

func createAdmin(ctx context.Context, store storage.IdentityStore, plaintext string) error {
	hash, err := password.Hash(plaintext)
	if err != nil {
		return err
	}

	admin, err := identity.New(identity.CreateInput{
		Username:     AdminUsername,
		PasswordHash: hash,
		Email:        "admin@example.com",
		FirstName:    "Admin",
		LastName:     "User",
	}, nil, nil)
	if err != nil {
		return fmt.Errorf("build admin identity: %w", err)
	}

	return store.PutIdentity(ctx, admin)
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/atelier/internal/auth/identity"
	"github.com/louisbranch/atelier/internal/storage"
)

const identityColumns = `id, username, password_hash, email, first_name, last_name, created_at, updated_at`

// PutIdentity inserts one identity record.
func (s *Store) PutIdentity(ctx context.Context, ident identity.Identity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(ident.ID) == "" {
		return fmt.Errorf("identity id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO identities (`+identityColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ident.ID,
		ident.Username,
		ident.PasswordHash,
		ident.Email,
		ident.FirstName,
		ident.LastName,
		toMillis(ident.CreatedAt),
		toMillis(ident.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrDuplicateUsername
		}
		return fmt.Errorf("put identity: %w", err)
	}
	return nil
}

// GetIdentity returns one identity by ID.
func (s *Store) GetIdentity(ctx context.Context, identityID string) (identity.Identity, error) {
	if err := ctx.Err(); err != nil {
		return identity.Identity{}, err
	}
	if s == nil || s.sqlDB == nil {
		return identity.Identity{}, fmt.Errorf("storage is not configured")
	}
	identityID = strings.TrimSpace(identityID)
	if identityID == "" {
		return identity.Identity{}, fmt.Errorf("identity id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+identityColumns+` FROM identities WHERE id = ?`,
		identityID,
	)
	return scanIdentity(row)
}

// FindIdentityByUsername returns one identity by its unique username.
func (s *Store) FindIdentityByUsername(ctx context.Context, username string) (identity.Identity, error) {
	if err := ctx.Err(); err != nil {
		return identity.Identity{}, err
	}
	if s == nil || s.sqlDB == nil {
		return identity.Identity{}, fmt.Errorf("storage is not configured")
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return identity.Identity{}, fmt.Errorf("username is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+identityColumns+` FROM identities WHERE username = ?`,
		username,
	)
	return scanIdentity(row)
}

// UpdatePasswordHash replaces the stored credential hash for one identity.
func (s *Store) UpdatePasswordHash(ctx context.Context, identityID, passwordHash string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	identityID = strings.TrimSpace(identityID)
	if identityID == "" {
		return fmt.Errorf("identity id is required")
	}
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE identities
		    SET password_hash = ?, updated_at = ?
		  WHERE id = ?`,
		passwordHash,
		toMillis(timeNow()),
		identityID,
	)
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanIdentity(row *sql.Row) (identity.Identity, error) {
	var ident identity.Identity
	var createdAt int64
	var updatedAt int64
	err := row.Scan(
		&ident.ID,
		&ident.Username,
		&ident.PasswordHash,
		&ident.Email,
		&ident.FirstName,
		&ident.LastName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return identity.Identity{}, storage.ErrNotFound
		}
		return identity.Identity{}, fmt.Errorf("scan identity: %w", err)
	}
	ident.CreatedAt = fromMillis(createdAt)
	ident.UpdatedAt = fromMillis(updatedAt)
	return ident, nil
}

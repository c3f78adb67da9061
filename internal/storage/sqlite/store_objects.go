package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/atelier/internal/objects"
	"github.com/louisbranch/atelier/internal/storage"
)

// PutObject inserts one media object with its access policy.
func (s *Store) PutObject(ctx context.Context, obj objects.Object) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(obj.ID) == "" {
		return fmt.Errorf("object id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO objects (id, filename, content_type, data, size, owner_id, visibility, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		obj.ID,
		obj.Filename,
		obj.ContentType,
		obj.Data,
		obj.Size,
		obj.OwnerID,
		string(obj.Visibility),
		toMillis(obj.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}

// GetObject returns one media object by ID, blob included.
func (s *Store) GetObject(ctx context.Context, objectID string) (objects.Object, error) {
	if err := ctx.Err(); err != nil {
		return objects.Object{}, err
	}
	if s == nil || s.sqlDB == nil {
		return objects.Object{}, fmt.Errorf("storage is not configured")
	}
	objectID = strings.TrimSpace(objectID)
	if objectID == "" {
		return objects.Object{}, fmt.Errorf("object id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, filename, content_type, data, size, owner_id, visibility, created_at
		   FROM objects
		  WHERE id = ?`,
		objectID,
	)
	var obj objects.Object
	var visibility string
	var createdAt int64
	err := row.Scan(
		&obj.ID,
		&obj.Filename,
		&obj.ContentType,
		&obj.Data,
		&obj.Size,
		&obj.OwnerID,
		&visibility,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return objects.Object{}, storage.ErrNotFound
		}
		return objects.Object{}, fmt.Errorf("get object: %w", err)
	}
	obj.Visibility = objects.Visibility(visibility)
	obj.CreatedAt = fromMillis(createdAt)
	return obj, nil
}

// DeleteObject removes one media object; deleting a missing object is a no-op.
func (s *Store) DeleteObject(ctx context.Context, objectID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	objectID = strings.TrimSpace(objectID)
	if objectID == "" {
		return nil
	}

	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM objects WHERE id = ?`, objectID); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

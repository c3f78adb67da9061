package objects

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/louisbranch/atelier/internal/platform/errors"
	"github.com/louisbranch/atelier/internal/platform/id"
)

// ErrAccessDenied indicates the requester holds no grant for the operation.
// It is distinct from a not-found failure: the object exists.
var ErrAccessDenied = apperrors.New(apperrors.CodeAccessDenied, "access to object denied")

// errNotFound matches any domain error carrying the not-found code, which is
// what the storage layer returns for missing rows.
var errNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// Store is the persistence seam the service needs; the SQLite store
// satisfies it.
type Store interface {
	PutObject(ctx context.Context, obj Object) error
	GetObject(ctx context.Context, objectID string) (Object, error)
	DeleteObject(ctx context.Context, objectID string) error
}

// Service commits uploads and gates retrieval behind the access policy.
type Service struct {
	store       Store
	clock       func() time.Time
	idGenerator func() (string, error)
}

// NewService creates a Service with default clock and ID generation.
func NewService(store Store) *Service {
	return &Service{
		store:       store,
		clock:       time.Now,
		idGenerator: id.NewID,
	}
}

// NewServiceWithDeps creates a Service with injected dependencies for tests.
func NewServiceWithDeps(store Store, clock func() time.Time, idGenerator func() (string, error)) *Service {
	if clock == nil {
		clock = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return &Service{store: store, clock: clock, idGenerator: idGenerator}
}

// UploadInput describes a finalized upload to commit.
type UploadInput struct {
	Filename    string
	ContentType string
	Data        []byte
	OwnerID     string
	Visibility  Visibility
}

// Upload commits the uploaded bytes with their access policy. Owner and
// visibility are set here exactly once; no later call rewrites them.
func (s *Service) Upload(ctx context.Context, input UploadInput) (Object, error) {
	if s == nil || s.store == nil {
		return Object{}, fmt.Errorf("object store is not configured")
	}
	input.Filename = strings.TrimSpace(input.Filename)
	if input.Filename == "" {
		return Object{}, apperrors.New(apperrors.CodeInvalidArgument, "filename is required")
	}
	if strings.TrimSpace(input.ContentType) == "" {
		return Object{}, apperrors.New(apperrors.CodeInvalidArgument, "content type is required")
	}
	if len(input.Data) == 0 {
		return Object{}, apperrors.New(apperrors.CodeInvalidArgument, "object data is required")
	}
	if input.Visibility == "" {
		input.Visibility = VisibilityPublic
	}

	objectID, err := s.idGenerator()
	if err != nil {
		return Object{}, fmt.Errorf("generate object id: %w", err)
	}

	obj := Object{
		ID:          objectID,
		Filename:    input.Filename,
		ContentType: strings.TrimSpace(input.ContentType),
		Data:        input.Data,
		Size:        int64(len(input.Data)),
		OwnerID:     strings.TrimSpace(input.OwnerID),
		Visibility:  input.Visibility,
		CreatedAt:   s.clock().UTC(),
	}
	if err := s.store.PutObject(ctx, obj); err != nil {
		return Object{}, fmt.Errorf("put object: %w", err)
	}
	return obj, nil
}

// Fetch loads the object after evaluating read access for the requester.
// requesterID is empty for anonymous requests. A missing object surfaces the
// store's not-found error; a policy rejection surfaces ErrAccessDenied so
// the transport can keep the two conditions distinct.
func (s *Service) Fetch(ctx context.Context, objectID, requesterID string) (Object, error) {
	if s == nil || s.store == nil {
		return Object{}, fmt.Errorf("object store is not configured")
	}
	obj, err := s.store.GetObject(ctx, objectID)
	if err != nil {
		return Object{}, err
	}
	if !CanAccess(obj, requesterID, PermissionRead) {
		return Object{}, ErrAccessDenied
	}
	return obj, nil
}

// Delete removes the object after evaluating write access for the requester.
func (s *Service) Delete(ctx context.Context, objectID, requesterID string) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("object store is not configured")
	}
	obj, err := s.store.GetObject(ctx, objectID)
	if err != nil {
		if errors.Is(err, errNotFound) {
			// Deleting a missing object is a no-op, matching session
			// teardown semantics elsewhere in the app.
			return nil
		}
		return err
	}
	if !CanAccess(obj, requesterID, PermissionWrite) {
		return ErrAccessDenied
	}
	if err := s.store.DeleteObject(ctx, obj.ID); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// Package identity provides the stored identity model and its public view.
package identity

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/louisbranch/atelier/internal/platform/errors"
	"github.com/louisbranch/atelier/internal/platform/id"
)

var (
	// ErrEmptyUsername indicates a missing username.
	ErrEmptyUsername = apperrors.New(apperrors.CodeInvalidArgument, "username is required")
	// ErrEmptyPasswordHash indicates a missing credential hash.
	ErrEmptyPasswordHash = apperrors.New(apperrors.CodeInvalidArgument, "password hash is required")
)

// Identity is a stored user record with a hashed credential.
//
// The struct carries the password hash and therefore must never be handed to
// anything that serializes responses; callers outside the auth boundary
// receive a PublicView instead.
type Identity struct {
	ID           string
	Username     string
	PasswordHash string
	Email        string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicView is the client-safe projection of an Identity.
//
// It is constructed only from a full Identity and structurally cannot carry
// the credential hash, so a serialization path that forgets to filter has
// nothing to leak.
type PublicView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the sanitized projection of the identity.
func (i Identity) Public() PublicView {
	return PublicView{
		ID:        i.ID,
		Username:  i.Username,
		Email:     i.Email,
		FirstName: i.FirstName,
		LastName:  i.LastName,
		CreatedAt: i.CreatedAt,
	}
}

// CreateInput describes the fields needed to create an identity.
type CreateInput struct {
	Username     string
	PasswordHash string
	Email        string
	FirstName    string
	LastName     string
}

// New creates an identity with a generated ID and timestamps.
func New(input CreateInput, now func() time.Time, idGenerator func() (string, error)) (Identity, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" {
		return Identity{}, ErrEmptyUsername
	}
	if input.PasswordHash == "" {
		return Identity{}, ErrEmptyPasswordHash
	}

	identityID, err := idGenerator()
	if err != nil {
		return Identity{}, fmt.Errorf("generate identity id: %w", err)
	}

	createdAt := now().UTC()
	return Identity{
		ID:           identityID,
		Username:     input.Username,
		PasswordHash: input.PasswordHash,
		Email:        strings.TrimSpace(input.Email),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}, nil
}

// Package session manages server-side web sessions.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/atelier/internal/storage"
)

// TTL is the fixed session lifetime. Expiry is absolute: it is set at
// creation and never extended on use.
const TTL = 7 * 24 * time.Hour

// tokenBytes sizes the random session token; 32 bytes gives 256 bits of
// entropy, well past the unguessability floor.
const tokenBytes = 32

// Manager creates, resolves, and destroys sessions against a SessionStore.
type Manager struct {
	store    storage.SessionStore
	clock    func() time.Time
	newToken func() (string, error)
}

// NewManager creates a Manager with default clock and token generation.
func NewManager(store storage.SessionStore) *Manager {
	return &Manager{
		store:    store,
		clock:    time.Now,
		newToken: NewToken,
	}
}

// NewManagerWithDeps creates a Manager with injected clock and token
// generation for deterministic tests.
func NewManagerWithDeps(store storage.SessionStore, clock func() time.Time, newToken func() (string, error)) *Manager {
	if clock == nil {
		clock = time.Now
	}
	if newToken == nil {
		newToken = NewToken
	}
	return &Manager{store: store, clock: clock, newToken: newToken}
}

// NewToken generates a cryptographically random, URL-safe session token.
func NewToken() (string, error) {
	var raw [tokenBytes]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw[:]), nil
}

// Create opens a session for the identity and returns the stored record.
// The caller places the session ID in an HTTP-only cookie.
func (m *Manager) Create(ctx context.Context, identityID string) (storage.Session, error) {
	if m == nil || m.store == nil {
		return storage.Session{}, fmt.Errorf("session store is not configured")
	}
	identityID = strings.TrimSpace(identityID)
	if identityID == "" {
		return storage.Session{}, fmt.Errorf("identity id is required")
	}

	token, err := m.newToken()
	if err != nil {
		return storage.Session{}, fmt.Errorf("generate session token: %w", err)
	}

	now := m.clock().UTC()
	session := storage.Session{
		ID:         token,
		IdentityID: identityID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(TTL),
	}
	if err := m.store.PutSession(ctx, session); err != nil {
		return storage.Session{}, fmt.Errorf("put session: %w", err)
	}
	return session, nil
}

// Resolve returns the session for the token, treating expired records as
// missing. Expiry is checked lazily so no background sweep is required for
// correctness.
func (m *Manager) Resolve(ctx context.Context, sessionID string) (storage.Session, error) {
	if m == nil || m.store == nil {
		return storage.Session{}, fmt.Errorf("session store is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return storage.Session{}, storage.ErrNotFound
	}

	session, err := m.store.GetSession(ctx, sessionID)
	if err != nil {
		return storage.Session{}, err
	}
	if !session.ExpiresAt.After(m.clock().UTC()) {
		return storage.Session{}, storage.ErrNotFound
	}
	return session, nil
}

// Destroy removes the session. Destroying a missing session is not an
// error; the operation is idempotent.
func (m *Manager) Destroy(ctx context.Context, sessionID string) error {
	if m == nil || m.store == nil {
		return fmt.Errorf("session store is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	if err := m.store.DeleteSession(ctx, sessionID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PurgeExpired removes expired session rows for storage hygiene and returns
// how many were deleted. Resolution correctness does not depend on it.
func (m *Manager) PurgeExpired(ctx context.Context) (int64, error) {
	if m == nil || m.store == nil {
		return 0, fmt.Errorf("session store is not configured")
	}
	removed, err := m.store.DeleteExpiredSessions(ctx, m.clock().UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return removed, nil
}

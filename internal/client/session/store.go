// Package session persists the credential and the cached user profile.
//
// The Store writes and clears both values as one unit, and its reads are
// fail-soft: corrupt or missing data reads as "absent", never as an error.
// It does no network I/O and keeps no in-memory state of its own; the
// observable session lives in the auth package.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/blogcli/internal/client/models"
	"github.com/dmitrijs2005/blogcli/internal/logging"
)

// Keys under which the session is persisted.
const (
	KeyToken   = "auth_token"
	KeyProfile = "user"
)

// Backend is a durable key-value store. Get returns (nil, nil) for a missing
// key. SetAll and DeleteAll must be atomic from the caller's point of view.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetAll(ctx context.Context, values map[string][]byte) error
	DeleteAll(ctx context.Context, keys ...string) error
	Close() error
}

// Store is the session store. It is safe for concurrent use if its Backend is.
type Store struct {
	backend Backend
	log     logging.Logger
}

func NewStore(backend Backend, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{backend: backend, log: log.With("component", "session")}
}

// Save writes the credential and profile together.
func (s *Store) Save(ctx context.Context, token string, p models.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	if err := s.backend.SetAll(ctx, map[string][]byte{
		KeyToken:   []byte(token),
		KeyProfile: raw,
	}); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes both values. Clearing an empty store is a no-op; backend
// failures are logged, not returned.
func (s *Store) Clear(ctx context.Context) {
	if err := s.backend.DeleteAll(ctx, KeyToken, KeyProfile); err != nil {
		s.log.Error(ctx, "failed to clear session", "error", err)
	}
}

// Token returns the stored credential, if any.
func (s *Store) Token(ctx context.Context) (string, bool) {
	raw, err := s.backend.Get(ctx, KeyToken)
	if err != nil {
		s.log.Warn(ctx, "session token unreadable, treating as absent", "error", err)
		return "", false
	}
	if len(raw) == 0 {
		return "", false
	}
	return string(raw), true
}

// Profile returns the cached profile. Unparsable data reads as absent.
func (s *Store) Profile(ctx context.Context) (models.Profile, bool) {
	raw, err := s.backend.Get(ctx, KeyProfile)
	if err != nil {
		s.log.Warn(ctx, "session profile unreadable, treating as absent", "error", err)
		return models.Profile{}, false
	}
	if raw == nil {
		return models.Profile{}, false
	}

	p, ok := decodeProfile(raw)
	if !ok {
		s.log.Warn(ctx, "malformed session profile ignored", "bytes", len(raw))
	}
	return p, ok
}

// IsAuthenticated reports whether a credential is present. Freshness is not
// checked; an expired token is discovered when the backend answers 401.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	_, ok := s.Token(ctx)
	return ok
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// decodeProfile is decode-or-default: anything that is not a JSON object
// with an id yields the zero Profile and false.
func decodeProfile(raw []byte) (models.Profile, bool) {
	var p models.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.Profile{}, false
	}
	if p.ID == "" {
		return models.Profile{}, false
	}
	return p, true
}

// Package auth holds the observable session state of the running client.
//
// Service is constructed once at startup and handed to the views. It reads
// the persisted session during Bootstrap, writes through to the session
// store on Login/Register, and clears it on Logout or Expire. Views observe
// changes with Subscribe.
package auth

import (
	"context"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/blogcli/internal/client/api"
	"github.com/dmitrijs2005/blogcli/internal/client/models"
	"github.com/dmitrijs2005/blogcli/internal/logging"
)

const (
	loginEndpoint    = "/auth/login"
	registerEndpoint = "/auth/register"
)

// Requester issues backend calls. *api.Gateway implements it.
type Requester interface {
	Request(ctx context.Context, endpoint string, out any, opts ...api.RequestOption) error
}

// SessionStore is the durable side of the session.
type SessionStore interface {
	Save(ctx context.Context, token string, p models.Profile) error
	Clear(ctx context.Context)
	Token(ctx context.Context) (string, bool)
	Profile(ctx context.Context) (models.Profile, bool)
}

// State is a snapshot of the session as views see it.
type State struct {
	User    *models.Profile
	Loading bool
}

// IsAuthenticated is derived from User and nothing else.
func (s State) IsAuthenticated() bool { return s.User != nil }

type Service struct {
	api   Requester
	store SessionStore
	log   logging.Logger

	bootOnce sync.Once

	mu      sync.RWMutex
	user    *models.Profile
	loading bool

	subsMu sync.Mutex
	subs   map[chan State]struct{}
	closed bool
	done   chan struct{}
	subWG  sync.WaitGroup
}

// NewService returns a Service in the loading state. Call Bootstrap before
// any view reads the session.
func NewService(requester Requester, store SessionStore, log logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{
		api:     requester,
		store:   store,
		log:     log.With("component", "auth"),
		loading: true,
		subs:    make(map[chan State]struct{}),
		done:    make(chan struct{}),
	}
}

// Bootstrap restores the persisted session. Only the first call has any
// effect; loading turns false exactly once whatever the store holds.
func (s *Service) Bootstrap(ctx context.Context) {
	s.bootOnce.Do(func() {
		profile, hasProfile := s.store.Profile(ctx)
		_, hasToken := s.store.Token(ctx)

		s.mu.Lock()
		if hasProfile && hasToken {
			p := profile
			s.user = &p
		}
		s.loading = false
		s.mu.Unlock()

		if hasProfile && hasToken {
			s.log.Info(ctx, "session restored", "user_id", profile.ID)
		} else {
			s.log.Debug(ctx, "no stored session")
		}
		s.publish()
	})
}

// Login signs in and persists the returned credential. Gateway errors are
// returned as they are.
func (s *Service) Login(ctx context.Context, email, password string) error {
	return s.authenticate(ctx, loginEndpoint, "Login failed", models.LoginRequest{
		Email:    email,
		Password: password,
	})
}

// Register creates an account. The confirmation is forwarded to the
// backend without being compared to password here.
func (s *Service) Register(ctx context.Context, email, password, name, passwordConfirmation string) error {
	return s.authenticate(ctx, registerEndpoint, "Registration failed", models.RegisterRequest{
		Email:                email,
		Password:             password,
		Name:                 name,
		PasswordConfirmation: passwordConfirmation,
	})
}

// authenticate posts body to endpoint and persists the returned session.
// A success response without a token or user id leaves the session
// untouched and fails with failMsg.
func (s *Service) authenticate(ctx context.Context, endpoint, failMsg string, body any) error {
	var resp models.AuthResponse
	if err := s.api.Request(ctx, endpoint, &resp,
		api.WithMethod(http.MethodPost),
		api.WithBody(body),
		api.WithoutAuth(),
	); err != nil {
		return err
	}

	if resp.Token == "" || resp.User.ID == "" {
		s.log.Warn(ctx, "incomplete auth response", "endpoint", endpoint)
		return &api.RequestFailedError{StatusCode: http.StatusOK, Message: failMsg}
	}

	if err := s.store.Save(ctx, resp.Token, resp.User); err != nil {
		return err
	}

	s.setUser(&resp.User)
	s.log.Info(ctx, "signed in", "user_id", resp.User.ID)
	return nil
}

// Logout clears the session. It cannot fail.
func (s *Service) Logout(ctx context.Context) {
	s.store.Clear(ctx)
	s.setUser(nil)
	s.log.Info(ctx, "signed out")
}

// Expire drops the in-memory user after the backend rejected the
// credential. The gateway has already cleared the store; clearing again is
// a no-op.
func (s *Service) Expire(ctx context.Context) {
	s.store.Clear(ctx)
	s.setUser(nil)
	s.log.Info(ctx, "session expired")
}

func (s *Service) setUser(p *models.Profile) {
	s.mu.Lock()
	if p != nil {
		cp := *p
		s.user = &cp
	} else {
		s.user = nil
	}
	s.mu.Unlock()
	s.publish()
}

func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

func (s *Service) stateLocked() State {
	st := State{Loading: s.loading}
	if s.user != nil {
		cp := *s.user
		st.User = &cp
	}
	return st
}

// User returns a copy of the signed-in profile, or nil.
func (s *Service) User() *models.Profile { return s.State().User }

func (s *Service) IsAuthenticated() bool { return s.State().IsAuthenticated() }

func (s *Service) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

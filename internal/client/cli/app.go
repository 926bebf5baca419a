package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/blogcli/internal/client/api"
	"github.com/dmitrijs2005/blogcli/internal/client/auth"
	"github.com/dmitrijs2005/blogcli/internal/client/models"
	"github.com/dmitrijs2005/blogcli/internal/logging"
)

// AuthService is the session context as the views use it.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password, name, passwordConfirmation string) error
	Logout(ctx context.Context)
	Expire(ctx context.Context)
	State() auth.State
	Subscribe(ctx context.Context) <-chan auth.State
}

// BlogService is the content boundary.
type BlogService interface {
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	GetPostByID(ctx context.Context, id string) (models.Post, error)
	GetPostDetail(ctx context.Context, id string) (models.PostDetail, error)
	CreatePost(ctx context.Context, in models.PostInput) (models.Post, error)
	UpdatePost(ctx context.Context, id string, in models.PostInput) (models.Post, error)
	DeletePost(ctx context.Context, id string) error
	AddComment(ctx context.Context, contentID, body string) (models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

// TokenSource exposes the stored credential to the profile view.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// UnauthorizedNotifier is implemented by *api.Gateway.
type UnauthorizedNotifier interface {
	OnUnauthorized(h api.UnauthorizedHandler)
}

type view string

const (
	viewHome    view = "home"
	viewLogin   view = "login"
	viewPosts   view = "posts"
	viewProfile view = "profile"
)

type navigation struct {
	to     view
	reason string
}

// App is the top-level coordinator: it owns the views, the pending
// navigation, and the reaction to a rejected credential.
type App struct {
	auth   AuthService
	blog   BlogService
	tokens TokenSource
	log    logging.Logger

	reader *bufio.Reader
	out    io.Writer

	mu      sync.Mutex
	pending *navigation
	retry   func(ctx context.Context) error
	drafts  map[string]string
}

// Option configures an App.
type Option func(*App)

// WithIO replaces stdin/stdout.
func WithIO(r io.Reader, w io.Writer) Option {
	return func(a *App) {
		a.reader = bufio.NewReader(r)
		a.out = w
	}
}

func WithLogger(l logging.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// WithTokens enables the credential details on the profile view.
func WithTokens(t TokenSource) Option {
	return func(a *App) { a.tokens = t }
}

// NewApp builds the App and, when notifier is not nil, subscribes it to
// unauthorized responses.
func NewApp(as AuthService, bs BlogService, notifier UnauthorizedNotifier, opts ...Option) *App {
	a := &App{
		auth:   as,
		blog:   bs,
		log:    logging.Nop(),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		drafts: make(map[string]string),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With("component", "cli")

	if notifier != nil {
		notifier.OnUnauthorized(a.handleUnauthorized)
	}
	return a
}

// handleUnauthorized runs inside the failing call, after the gateway has
// cleared the store. The view that issued the call sees ErrUnauthorized
// and stops; the REPL follows the navigation before the next prompt.
func (a *App) handleUnauthorized(ctx context.Context, ev api.UnauthorizedEvent) {
	a.log.Info(ctx, "redirecting to login", "endpoint", ev.Endpoint)
	a.auth.Expire(ctx)
	a.navigate(viewLogin, "Your session has expired. Please sign in again.")
}

func (a *App) navigate(to view, reason string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = &navigation{to: to, reason: reason}
}

func (a *App) takeNavigation() *navigation {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := a.pending
	a.pending = nil
	return n
}

// followNavigation performs a navigation requested since the last prompt.
func (a *App) followNavigation(ctx context.Context) {
	n := a.takeNavigation()
	if n == nil {
		return
	}
	if n.reason != "" {
		a.println(n.reason)
	}

	switch n.to {
	case viewLogin:
		_ = a.Login(ctx)
	case viewPosts:
		_ = a.Posts(ctx)
	case viewProfile:
		_ = a.Profile(ctx)
	default:
		_ = a.Home(ctx)
	}
}

func (a *App) setRetry(fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.retry = fn
}

// Retry reloads the last view that failed to load.
func (a *App) Retry(ctx context.Context) error {
	a.mu.Lock()
	fn := a.retry
	a.mu.Unlock()

	if fn == nil {
		a.println("Nothing to retry.")
		return nil
	}
	return fn(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.auth.State().IsAuthenticated()
}

// prompt is "blog (<name>)> " for a signed-in user and "blog> " otherwise.
func (a *App) prompt() string {
	st := a.auth.State()
	if st.User == nil {
		return "blog> "
	}
	name := st.User.Name
	if name == "" {
		name = st.User.Email
	}
	return fmt.Sprintf("blog (%s)> ", name)
}

// Run shows the home view and blocks in the REPL until the user exits or
// input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartSessionWatcher(ctx)

	a.println("Welcome to the blog CLI (type 'help' for commands)")
	_ = a.Home(ctx)

	runREPL(ctx, a, a.out, a.prompt, a.reader)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

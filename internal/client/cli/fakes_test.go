package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/blogcli/internal/client/api"
	"github.com/dmitrijs2005/blogcli/internal/client/auth"
	"github.com/dmitrijs2005/blogcli/internal/client/models"
)

type fakeAuth struct {
	mu    sync.Mutex
	state auth.State

	loginEmail, loginPass string
	loginUser             *models.Profile
	loginErr              error

	regArgs []string
	regErr  error

	logoutCalls int
	expireCalls int
}

func signedIn(name string) *fakeAuth {
	return &fakeAuth{state: auth.State{User: &models.Profile{ID: "1", Email: "a@b.com", Name: name}}}
}

func (f *fakeAuth) Login(_ context.Context, email, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginEmail, f.loginPass = email, password
	if f.loginErr != nil {
		return f.loginErr
	}
	f.state.User = f.loginUser
	return nil
}

func (f *fakeAuth) Register(_ context.Context, email, password, name, confirmation string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.regArgs = []string{email, password, name, confirmation}
	if f.regErr != nil {
		return f.regErr
	}
	f.state.User = &models.Profile{ID: "2", Email: email, Name: name}
	return nil
}

func (f *fakeAuth) Logout(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoutCalls++
	f.state.User = nil
}

func (f *fakeAuth) Expire(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expireCalls++
	f.state.User = nil
}

func (f *fakeAuth) State() auth.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeAuth) Subscribe(ctx context.Context) <-chan auth.State {
	ch := make(chan auth.State)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch
}

type fakeBlog struct {
	calls []string

	posts    []models.Post
	postsErr error

	post    models.Post
	postErr error

	detail    models.PostDetail
	detailErr error

	created   models.PostInput
	createErr error

	updated   models.PostInput
	updateErr error

	deleteErr error

	commentPost, commentBody string
	commentErr               error

	deleteCommentErr error
}

func (f *fakeBlog) GetAllPosts(context.Context) ([]models.Post, error) {
	f.calls = append(f.calls, "GetAllPosts")
	return f.posts, f.postsErr
}

func (f *fakeBlog) GetPostByID(_ context.Context, id string) (models.Post, error) {
	f.calls = append(f.calls, "GetPostByID "+id)
	return f.post, f.postErr
}

func (f *fakeBlog) GetPostDetail(_ context.Context, id string) (models.PostDetail, error) {
	f.calls = append(f.calls, "GetPostDetail "+id)
	return f.detail, f.detailErr
}

func (f *fakeBlog) CreatePost(_ context.Context, in models.PostInput) (models.Post, error) {
	f.calls = append(f.calls, "CreatePost")
	f.created = in
	return models.Post{ID: "new1", Title: in.Title}, f.createErr
}

func (f *fakeBlog) UpdatePost(_ context.Context, id string, in models.PostInput) (models.Post, error) {
	f.calls = append(f.calls, "UpdatePost "+id)
	f.updated = in
	return models.Post{ID: id}, f.updateErr
}

func (f *fakeBlog) DeletePost(_ context.Context, id string) error {
	f.calls = append(f.calls, "DeletePost "+id)
	return f.deleteErr
}

func (f *fakeBlog) AddComment(_ context.Context, contentID, body string) (models.Comment, error) {
	f.calls = append(f.calls, "AddComment "+contentID)
	f.commentPost, f.commentBody = contentID, body
	return models.Comment{ID: "c1", Body: body}, f.commentErr
}

func (f *fakeBlog) DeleteComment(_ context.Context, id string) error {
	f.calls = append(f.calls, "DeleteComment "+id)
	return f.deleteCommentErr
}

type fakeNotifier struct {
	handlers []api.UnauthorizedHandler
}

func (f *fakeNotifier) OnUnauthorized(h api.UnauthorizedHandler) {
	f.handlers = append(f.handlers, h)
}

func (f *fakeNotifier) fire(ctx context.Context, endpoint string) {
	for _, h := range f.handlers {
		h(ctx, api.UnauthorizedEvent{Method: "POST", Endpoint: endpoint})
	}
}

type fakeTokens struct{ token string }

func (f fakeTokens) Token(context.Context) (string, bool) { return f.token, f.token != "" }

// newTestApp builds an App reading input lines and writing to a buffer.
func newTestApp(as AuthService, bs BlogService, input ...string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	in := strings.Join(input, "\n")
	if len(input) > 0 {
		in += "\n"
	}
	a := NewApp(as, bs, nil, WithIO(strings.NewReader(in), out))
	return a, out
}

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

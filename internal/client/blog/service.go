// Package blog wraps the content and comment endpoints of the blog backend.
package blog

import (
	"context"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/blogcli/internal/client/api"
	"github.com/dmitrijs2005/blogcli/internal/client/models"
)

// Requester issues backend calls. *api.Gateway implements it.
type Requester interface {
	Request(ctx context.Context, endpoint string, out any, opts ...api.RequestOption) error
}

type Service struct {
	api Requester
}

func NewService(requester Requester) *Service {
	return &Service{api: requester}
}

// contentItem is a post as the backend stores it.
type contentItem struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	AuthorID  string `json:"authorId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type envelope[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// toPost fills in what the backend does not return: it has no author
// details beyond the id.
func (c contentItem) toPost() models.Post {
	return models.Post{
		ID:    c.ID,
		Title: c.Title,
		Body:  c.Body,
		Author: models.Author{
			ID:   c.AuthorID,
			Name: "Author",
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (s *Service) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	var resp envelope[[]contentItem]
	if err := s.api.Request(ctx, "/content/getAllContent", &resp, api.WithoutAuth()); err != nil {
		return nil, err
	}

	posts := make([]models.Post, 0, len(resp.Data))
	for _, item := range resp.Data {
		posts = append(posts, item.toPost())
	}
	return posts, nil
}

func (s *Service) GetPostByID(ctx context.Context, id string) (models.Post, error) {
	var resp envelope[contentItem]
	if err := s.api.Request(ctx, "/content/getContent/"+url.PathEscape(id), &resp, api.WithoutAuth()); err != nil {
		return models.Post{}, err
	}
	return resp.Data.toPost(), nil
}

func (s *Service) GetCommentsByContentID(ctx context.Context, contentID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.api.Request(ctx, "/comments/content/"+url.PathEscape(contentID), &comments, api.WithoutAuth()); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetPostDetail loads the post and its comments concurrently. The first
// failure cancels the other call and is returned.
func (s *Service) GetPostDetail(ctx context.Context, id string) (models.PostDetail, error) {
	var (
		post     models.Post
		comments []models.Comment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		post, err = s.GetPostByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = s.GetCommentsByContentID(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.PostDetail{}, err
	}

	post.CommentsCount = len(comments)
	return models.PostDetail{Post: post, Comments: comments}, nil
}

func (s *Service) CreatePost(ctx context.Context, in models.PostInput) (models.Post, error) {
	var post models.Post
	err := s.api.Request(ctx, "/content/create", &post,
		api.WithMethod(http.MethodPost),
		api.WithBody(in),
	)
	return post, err
}

func (s *Service) UpdatePost(ctx context.Context, id string, in models.PostInput) (models.Post, error) {
	var post models.Post
	err := s.api.Request(ctx, "/content/update/"+url.PathEscape(id), &post,
		api.WithMethod(http.MethodPut),
		api.WithBody(in),
	)
	return post, err
}

func (s *Service) DeletePost(ctx context.Context, id string) error {
	return s.api.Request(ctx, "/content/delete/"+url.PathEscape(id), nil, api.WithMethod(http.MethodDelete))
}

func (s *Service) AddComment(ctx context.Context, contentID, body string) (models.Comment, error) {
	var c models.Comment
	err := s.api.Request(ctx, "/comments/create", &c,
		api.WithMethod(http.MethodPost),
		api.WithBody(models.CommentInput{Body: body, ContentID: contentID}),
	)
	return c, err
}

func (s *Service) DeleteComment(ctx context.Context, id string) error {
	return s.api.Request(ctx, "/comments/delete/"+url.PathEscape(id), nil, api.WithMethod(http.MethodDelete))
}

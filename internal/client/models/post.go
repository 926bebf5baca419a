package models

// Author identifies who wrote a post or comment.
type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

type Post struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	Author        Author `json:"author"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
	Excerpt       string `json:"excerpt,omitempty"`
	CommentsCount int    `json:"commentsCount,omitempty"`
}

type Comment struct {
	ID        string `json:"id"`
	Body      string `json:"body"`
	Author    Author `json:"author"`
	CreatedAt string `json:"createdAt"`
}

// PostDetail is a post together with its comments.
type PostDetail struct {
	Post
	Comments []Comment `json:"comments"`
}

type PostInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type CommentInput struct {
	Body      string `json:"body"`
	ContentID string `json:"contentId"`
}

package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/blogcli/internal/client/blog"
	"github.com/dmitrijs2005/blogcli/internal/client/models"
)

const listExcerptLength = 120

// Posts lists every post.
func (a *App) Posts(ctx context.Context) error {
	a.println("Loading posts...")
	posts, err := a.blog.GetAllPosts(ctx)
	if err != nil {
		return a.failed(ctx, err, a.Posts)
	}
	a.setRetry(nil)

	a.println()
	if len(posts) == 0 {
		a.println("No posts yet. Be the first to share something!")
		return nil
	}

	a.printf("Blog Posts (%d)\n", len(posts))
	for i, p := range posts {
		excerpt := p.Excerpt
		if excerpt == "" {
			excerpt = blog.GenerateExcerpt(p.Body, listExcerptLength)
		}
		a.println()
		a.printf("[%d] %s\n", i+1, p.Title)
		a.printf("    %s\n", strings.ReplaceAll(excerpt, "\n", " "))
		a.printf("    By %s · %s · %s\n", p.Author.Name, formatDate(p.CreatedAt), plural(p.CommentsCount, "comment", "comments"))
		a.printf("    id: %s\n", p.ID)
	}
	a.println()
	a.println("Type 'show <id>' to read a post.")
	return nil
}

// Show prints a post with its comments.
func (a *App) Show(ctx context.Context, id string) error {
	a.println("Loading post...")
	d, err := a.blog.GetPostDetail(ctx, id)
	if err != nil {
		return a.failed(ctx, err, func(ctx context.Context) error { return a.Show(ctx, id) })
	}
	a.setRetry(nil)
	a.renderPost(d)
	return nil
}

func (a *App) renderPost(d models.PostDetail) {
	a.println()
	a.println(d.Title)
	a.println(strings.Repeat("=", len([]rune(d.Title))))
	line := "By " + d.Author.Name + " · " + formatDate(d.CreatedAt)
	if d.UpdatedAt != "" && d.UpdatedAt != d.CreatedAt {
		line += " (updated " + formatDate(d.UpdatedAt) + ")"
	}
	a.println(line)
	a.println()
	a.println(d.Body)
	a.println()

	a.printf("Comments (%d)\n", len(d.Comments))
	if len(d.Comments) == 0 {
		a.println("No comments yet. Be the first to comment!")
	}
	for _, c := range d.Comments {
		a.printf("- %s, %s [id: %s]\n", c.Author.Name, formatDate(c.CreatedAt), c.ID)
		for _, l := range strings.Split(c.Body, "\n") {
			a.printf("  %s\n", l)
		}
	}

	a.println()
	if a.isLoggedIn() {
		a.printf("Type 'comment %s' to add a comment.\n", d.ID)
	} else {
		a.println("Sign in to join the discussion.")
	}
}

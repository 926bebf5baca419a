package cli

import (
	"context"

	"github.com/dmitrijs2005/blogcli/internal/client/models"
)

// requireLogin sends a signed-out user to the login view.
func (a *App) requireLogin(reason string) bool {
	if a.isLoggedIn() {
		return true
	}
	a.navigate(viewLogin, reason)
	return false
}

// NewPost prompts for a title and body and publishes the post.
func (a *App) NewPost(ctx context.Context) error {
	if !a.requireLogin("Please sign in to write a post.") {
		return nil
	}

	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	body, err := getMultiline(a.reader, "Body", a.out)
	if err != nil {
		return err
	}
	if title == "" || body == "" {
		a.println("Title and body are required.")
		return nil
	}

	a.println("Publishing...")
	p, err := a.blog.CreatePost(ctx, models.PostInput{Title: title, Body: body})
	if err != nil {
		return a.actionFailed("create post", err)
	}

	if p.ID != "" {
		a.printf("Post published (id: %s).\n", p.ID)
	} else {
		a.println("Post published.")
	}
	return nil
}

// EditPost loads a post and lets the user replace its title and body.
// Empty input keeps the current value.
func (a *App) EditPost(ctx context.Context, id string) error {
	if !a.requireLogin("Please sign in to edit posts.") {
		return nil
	}

	current, err := a.blog.GetPostByID(ctx, id)
	if err != nil {
		return a.actionFailed("load post", err)
	}

	a.printf("Current title: %s\n", current.Title)
	title, err := getSimpleText(a.reader, "New title (empty keeps current)", a.out)
	if err != nil {
		return err
	}
	body, err := getMultiline(a.reader, "New body (empty keeps current)", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		title = current.Title
	}
	if body == "" {
		body = current.Body
	}
	if title == current.Title && body == current.Body {
		a.println("Nothing changed.")
		return nil
	}

	if _, err := a.blog.UpdatePost(ctx, id, models.PostInput{Title: title, Body: body}); err != nil {
		return a.actionFailed("update post", err)
	}
	a.println("Post updated.")
	return nil
}

func (a *App) DeletePost(ctx context.Context, id string) error {
	if !a.requireLogin("Please sign in to delete posts.") {
		return nil
	}

	ok, err := getConfirm(a.reader, "Delete post "+id+"?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}

	if err := a.blog.DeletePost(ctx, id); err != nil {
		return a.actionFailed("delete post", err)
	}
	a.println("Post deleted.")
	return nil
}

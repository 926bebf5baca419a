package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/blogcli/internal/client/api"
)

// Comment posts a comment on postID. Signed-out users are sent to the
// login view and the backend is not called. A failed submission keeps the
// text as a draft that the next attempt on the same post can reuse.
func (a *App) Comment(ctx context.Context, postID string) error {
	if !a.isLoggedIn() {
		a.navigate(viewLogin, "Please sign in to comment.")
		return nil
	}

	draft := a.draft(postID)
	prompt := "Write your comment"
	if draft != "" {
		a.printf("Draft: %s\n", draft)
		prompt += " (empty line keeps the draft)"
	}

	text, err := getMultiline(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if text == "" {
		text = draft
	}
	if text == "" {
		return nil
	}

	a.println("Posting...")
	if _, err := a.blog.AddComment(ctx, postID, text); err != nil {
		a.setDraft(postID, text)
		if !errors.Is(err, api.ErrUnauthorized) {
			a.printf("Could not post comment: %s\n", err.Error())
			a.println("Your draft has been kept.")
		}
		return err
	}

	a.setDraft(postID, "")
	a.println("Comment posted.")
	return a.Show(ctx, postID)
}

// Uncomment deletes a comment.
func (a *App) Uncomment(ctx context.Context, commentID string) error {
	if !a.isLoggedIn() {
		a.navigate(viewLogin, "Please sign in to manage comments.")
		return nil
	}
	if err := a.blog.DeleteComment(ctx, commentID); err != nil {
		return a.actionFailed("delete comment", err)
	}
	a.println("Comment deleted.")
	return nil
}

func (a *App) draft(postID string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.drafts[postID]
}

func (a *App) setDraft(postID, text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if text == "" {
		delete(a.drafts, postID)
		return
	}
	a.drafts[postID] = text
}

package cli

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/dmitrijs2005/blogcli/internal/client/api"
)

// failed reports err for a view that could not load and arms retry. An
// unauthorized error prints nothing: the redirect to login follows.
func (a *App) failed(ctx context.Context, err error, retry func(context.Context) error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		return err
	}
	a.log.Debug(ctx, "view failed to load", "error", err)
	a.println()
	a.println("Oops! Something went wrong")
	a.println(err.Error())
	if retry != nil {
		a.setRetry(retry)
		a.println("Type 'retry' to try again.")
	}
	return err
}

// actionFailed reports a failed mutation inline.
func (a *App) actionFailed(what string, err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		return err
	}
	a.printf("Could not %s: %s\n", what, err.Error())
	return err
}

// formatDate renders backend timestamps as "Jan 2, 2006"; anything
// unparsable is shown as is.
func formatDate(s string) string {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return s
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}

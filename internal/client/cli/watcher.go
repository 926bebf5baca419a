package cli

import (
	"context"

	"github.com/dmitrijs2005/blogcli/internal/client/auth"
)

// StartSessionWatcher logs every session transition until ctx is done.
func (a *App) StartSessionWatcher(ctx context.Context) {
	updates := a.auth.Subscribe(ctx)
	last := a.auth.State()

	for {
		select {
		case st, ok := <-updates:
			if !ok {
				return
			}
			if st.IsAuthenticated() != last.IsAuthenticated() || st.Loading != last.Loading {
				a.log.Debug(ctx, "session state changed",
					"authenticated", st.IsAuthenticated(),
					"loading", st.Loading,
					"user_id", userID(st),
				)
			}
			last = st

		case <-ctx.Done():
			return
		}
	}
}

func userID(st auth.State) string {
	if st.User == nil {
		return ""
	}
	return st.User.ID
}

package cli

import "context"

func (a *App) Home(ctx context.Context) error {
	st := a.auth.State()
	a.println()
	a.println("Welcome to the Blog")
	a.println("Read, write and discuss posts from the terminal.")

	switch {
	case st.Loading:
		a.println("Loading...")
	case st.User != nil:
		a.printf("Signed in as %s. Type 'posts' to read or 'new' to write.\n", displayName(st.User.Name, st.User.Email))
	default:
		a.println("Type 'posts' to browse, or 'login' / 'register' to join the conversation.")
	}
	return nil
}

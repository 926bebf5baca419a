package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	followNavigation(ctx context.Context)

	Home(ctx context.Context) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Posts(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Comment(ctx context.Context, postID string) error
	Uncomment(ctx context.Context, commentID string) error
	NewPost(ctx context.Context) error
	EditPost(ctx context.Context, id string) error
	DeletePost(ctx context.Context, id string) error
	Retry(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: home, posts (l), show <id>, login, register, profile, retry, exit"
	helpSignedIn  = "Available commands: home, posts (l), show <id>, comment <postId>, uncomment <commentId>, " +
		"new, edit <id>, delete <id>, profile, logout, retry, exit"
)

// runREPL reads commands from reader, dispatches them to a and writes the
// prompt and its own messages to w.
//
// Before each prompt any navigation requested by the previous command (for
// instance a redirect to the login view after the backend rejected the
// credential) is followed. The loop exits on EOF or "exit"/"quit". Errors
// returned by handlers are ignored here: handlers report to the user
// themselves.
func runREPL(ctx context.Context, a execIface, w io.Writer, promptFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		a.followNavigation(ctx)

		fmt.Fprint(w, promptFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		withID := func(usage string, fn func(context.Context, string) error) {
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage:", usage)
				return
			}
			_ = fn(ctx, args[0])
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpSignedIn)
			} else {
				fmt.Fprintln(w, helpSignedOut)
			}

		case "home":
			_ = a.Home(ctx)

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "l", "posts":
			_ = a.Posts(ctx)

		case "show":
			withID("show <id>", a.Show)

		case "comment":
			withID("comment <postId>", a.Comment)

		case "uncomment":
			withID("uncomment <commentId>", a.Uncomment)

		case "new":
			_ = a.NewPost(ctx)

		case "edit":
			withID("edit <id>", a.EditPost)

		case "delete":
			withID("delete <id>", a.DeletePost)

		case "retry":
			_ = a.Retry(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

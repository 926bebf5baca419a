// Package cli provides the interactive blog client.
//
// App is the top-level coordinator. It renders the views (home, post list,
// post detail, profile, and the login/register/editor forms) and owns
// navigation: when the gateway reports a rejected credential, App expires
// the session and the REPL moves to the login prompt before the next
// command.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getConfirm    = GetConfirmation
)

// Login prompts for credentials and signs in. On failure the message is
// shown and the session is left as it was.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	if email == "" || password == "" {
		a.println("Email and password are required.")
		return nil
	}

	a.println("Signing in...")
	if err := a.auth.Login(ctx, email, password); err != nil {
		a.printf("Login failed: %s\n", err.Error())
		return err
	}

	a.greet("Welcome back")
	return nil
}

// Register prompts for the account details. The confirmation is passed to
// the backend as entered.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	confirmation, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	if name == "" || email == "" || password == "" {
		a.println("Name, email and password are required.")
		return nil
	}

	a.println("Creating account...")
	if err := a.auth.Register(ctx, email, password, name, confirmation); err != nil {
		a.printf("Registration failed: %s\n", err.Error())
		return err
	}

	a.greet("Welcome")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("You are not signed in.")
		return nil
	}
	a.auth.Logout(ctx)
	a.println("Signed out.")
	return nil
}

func (a *App) greet(prefix string) {
	st := a.auth.State()
	if st.User == nil {
		return
	}
	a.println(fmt.Sprintf("%s, %s!", prefix, displayName(st.User.Name, st.User.Email)))
}

func displayName(name, email string) string {
	if name != "" {
		return name
	}
	return email
}

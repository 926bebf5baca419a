package cli

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Profile shows the signed-in user.
func (a *App) Profile(ctx context.Context) error {
	st := a.auth.State()
	if st.Loading {
		a.println("Loading...")
		return nil
	}
	if st.User == nil {
		a.navigate(viewLogin, "Please sign in to view your profile.")
		return nil
	}

	u := st.User
	a.println()
	a.println("Profile")
	a.printf("  Name:    %s\n", u.Name)
	a.printf("  Email:   %s\n", u.Email)
	a.printf("  User ID: %s\n", u.ID)
	a.println("  Status:  Active")

	if a.tokens == nil {
		return nil
	}
	token, ok := a.tokens.Token(ctx)
	if !ok {
		return nil
	}
	if c, ok := readClaims(token); ok {
		if c.subject != "" {
			a.printf("  Subject: %s\n", c.subject)
		}
		if !c.expiresAt.IsZero() {
			a.printf("  Session expires: %s\n", c.expiresAt.Local().Format(time.DateTime))
		}
	}
	return nil
}

type tokenClaims struct {
	subject   string
	expiresAt time.Time
}

// readClaims decodes a JWT without verifying it. The values are for
// display only; the backend remains the judge of validity.
func readClaims(token string) (tokenClaims, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return tokenClaims{}, false
	}

	var c tokenClaims
	if sub, err := claims.GetSubject(); err == nil {
		c.subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		c.expiresAt = exp.Time
	}
	return c, true
}

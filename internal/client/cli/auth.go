package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/assetkeeper/internal/client/guard"
	"github.com/dmitrijs2005/assetkeeper/internal/client/session"
	"github.com/dmitrijs2005/assetkeeper/internal/common"
)

// Login prompts for credentials and signs in. On success the console
// navigates to the dashboard.
//
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.account.Login(ctx, userName, password)
	if err != nil {
		a.logger.Debug(ctx, "login failed", "user", userName, "error", err)
		return fmt.Errorf("login failed: %w", err)
	}

	printlnFn(fmt.Sprintf("Login successful. Welcome, %s!", user.DisplayName()))
	return a.Open(ctx, "/")
}

// Logout ends the session. The local session is cleared even when the
// backend cannot be reached.
func (a *App) Logout(ctx context.Context) error {
	if err := a.account.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	a.path = guard.LoginPath
	return nil
}

// Whoami prints the session user and, when the token is a JWT, its expiry.
func (a *App) Whoami(ctx context.Context) error {
	sess := a.account.Current()
	if !sess.Authenticated() {
		printlnFn("Not logged in.")
		return nil
	}

	user := sess.User()
	printlnFn(fmt.Sprintf("User: %s (%s)", user.Username(), user.DisplayName()))

	claims, err := session.InspectToken(sess.Token())
	if err != nil {
		a.logger.Debug(ctx, "token is not a readable JWT", "error", err)
		return nil
	}
	if claims.Subject != "" {
		printlnFn("Subject:", claims.Subject)
	}
	if !claims.ExpiresAt.IsZero() {
		state := "valid"
		if claims.Expired(time.Now()) {
			state = "expired, run 'refresh' or log in again"
		}
		printlnFn(fmt.Sprintf("Token expires: %s (%s)", claims.ExpiresAt.Local().Format(time.DateTime), state))
	}
	return nil
}

// Refresh trades the refresh token for a new access token.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.account.Refresh(ctx); err != nil {
		return err
	}
	printlnFn("Token refreshed.")
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/assetkeeper/internal/client/models"
	"github.com/dmitrijs2005/assetkeeper/internal/client/session"
	"github.com/dmitrijs2005/assetkeeper/internal/client/validation"
	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/dmitrijs2005/assetkeeper/internal/logging"
)

var (
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrNoRefreshToken = errors.New("no refresh token for this session")
)

// SessionStore is the session state the account flow drives.
type SessionStore interface {
	Login(ctx context.Context, user models.UserProfile, token string) error
	Logout(ctx context.Context) error
	Session() session.Session
}

// AccountService is the console's login flow on top of AuthService.
//
// Login checks the form, exchanges credentials for tokens, fetches the
// profile with the fresh access token and only then records the session.
// Logout tells the backend when it can but always clears the local session.
type AccountService interface {
	Login(ctx context.Context, username string, password []byte) (models.UserProfile, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	Current() session.Session
}

type accountService struct {
	auth   AuthService
	store  SessionStore
	logger logging.Logger

	mu           sync.Mutex
	refreshToken string
}

func NewAccountService(auth AuthService, store SessionStore, logger logging.Logger) AccountService {
	return &accountService{auth: auth, store: store, logger: logger}
}

func (a *accountService) Login(ctx context.Context, username string, password []byte) (models.UserProfile, error) {
	if err := validation.Login(username, string(password)); err != nil {
		return nil, err
	}

	tokens, err := a.auth.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	user, err := a.auth.Me(ctx, tokens.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("fetch profile error: %w", err)
	}

	if err := a.store.Login(ctx, user, tokens.AccessToken); err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.refreshToken = tokens.RefreshToken
	a.mu.Unlock()

	a.logger.Info(ctx, "logged in", "user", user.Username())
	return user, nil
}

func (a *accountService) Logout(ctx context.Context) error {
	if a.store.Session().Authenticated() {
		if err := a.auth.Logout(ctx); err != nil {
			a.logger.Warn(ctx, "backend logout failed", "error", err)
		}
	}

	a.mu.Lock()
	a.refreshToken = ""
	a.mu.Unlock()

	return a.store.Logout(ctx)
}

// Refresh swaps the access token of the current session for a new one.
// A rejected refresh token ends the session.
func (a *accountService) Refresh(ctx context.Context) error {
	current := a.store.Session()
	if !current.Authenticated() {
		return ErrNotLoggedIn
	}

	a.mu.Lock()
	rt := a.refreshToken
	a.mu.Unlock()
	if rt == "" {
		return ErrNoRefreshToken
	}

	tokens, err := a.auth.Refresh(ctx, rt)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			a.logger.Warn(ctx, "refresh token rejected, logging out")
			return errors.Join(err, a.Logout(ctx))
		}
		return fmt.Errorf("refresh error: %w", err)
	}

	if err := a.store.Login(ctx, current.User(), tokens.AccessToken); err != nil {
		return err
	}
	if tokens.RefreshToken != "" {
		a.mu.Lock()
		a.refreshToken = tokens.RefreshToken
		a.mu.Unlock()
	}
	return nil
}

func (a *accountService) Current() session.Session {
	return a.store.Session()
}

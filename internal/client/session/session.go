package session

import (
	"errors"
	"reflect"

	"github.com/dmitrijs2005/assetkeeper/internal/client/models"
)

var (
	ErrNoUser     = errors.New("login requires a user profile")
	ErrEmptyToken = errors.New("login requires a non-empty token")
)

// Session is the client-held login state. The zero value is logged out.
type Session struct {
	user  models.UserProfile
	token string
}

// Login returns the logged-in session for user and token.
func Login(user models.UserProfile, token string) (Session, error) {
	if user == nil {
		return Session{}, ErrNoUser
	}
	if token == "" {
		return Session{}, ErrEmptyToken
	}
	return Session{user: user.Clone(), token: token}, nil
}

// Logout returns the logged-out session.
func Logout() Session {
	return Session{}
}

// Authenticated reports whether s carries a user and a token.
func (s Session) Authenticated() bool {
	return s.user != nil && s.token != ""
}

// User returns a copy of the profile, nil when logged out.
func (s Session) User() models.UserProfile {
	return s.user.Clone()
}

// Token returns the bearer token, "" when logged out.
func (s Session) Token() string {
	return s.token
}

// Equal compares two sessions by value.
func (s Session) Equal(o Session) bool {
	return s.token == o.token && reflect.DeepEqual(s.user, o.user)
}

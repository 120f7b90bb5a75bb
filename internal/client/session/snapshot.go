package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/assetkeeper/internal/client/models"
)

var (
	ErrCorruptSnapshot      = errors.New("corrupt session snapshot")
	ErrInconsistentSnapshot = errors.New("inconsistent session snapshot")
)

type snapshot struct {
	IsAuthenticated bool               `json:"isAuthenticated"`
	User            models.UserProfile `json:"user"`
	Token           *string            `json:"token"`
}

// Encode serializes s into the persisted snapshot layout.
func Encode(s Session) ([]byte, error) {
	snap := snapshot{}
	if s.Authenticated() {
		tok := s.token
		snap = snapshot{IsAuthenticated: true, User: s.user, Token: &tok}
	}
	return json.Marshal(snap)
}

// Decode parses a persisted snapshot. It always returns a well-formed
// session: on any error the session is logged out and the error says why.
func Decode(data []byte) (Session, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	hasToken := snap.Token != nil && *snap.Token != ""
	hasUser := snap.User != nil

	if snap.IsAuthenticated && hasUser && hasToken {
		return Session{user: snap.User, token: *snap.Token}, nil
	}
	if snap.IsAuthenticated || hasUser || hasToken {
		return Session{}, ErrInconsistentSnapshot
	}
	return Session{}, nil
}

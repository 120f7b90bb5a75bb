package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/assetkeeper/internal/client/models"
	"github.com/dmitrijs2005/assetkeeper/internal/logging"
)

// Store is the single source of truth for who is logged in.
// It is safe for concurrent use; transitions are serialized.
type Store struct {
	mu      sync.RWMutex
	current Session
	storage Storage
	logger  logging.Logger
}

// Open rehydrates a Store from storage. Any read or decode failure yields
// the logged-out session and is only logged.
func Open(ctx context.Context, storage Storage, logger logging.Logger) *Store {
	s := &Store{storage: storage, logger: logger}
	s.current = s.rehydrate(ctx)
	return s
}

func (s *Store) rehydrate(ctx context.Context) Session {
	data, found, err := s.storage.Load(ctx)
	if err != nil {
		s.logger.Warn(ctx, "session snapshot unreadable, starting logged out", "error", err)
		return Logout()
	}
	if !found {
		return Logout()
	}

	sess, err := Decode(data)
	if err != nil {
		s.logger.Warn(ctx, "session snapshot discarded", "error", err)
		return Logout()
	}
	if sess.Authenticated() {
		s.logger.Debug(ctx, "session restored", "user", sess.user.Username())
	}
	return sess
}

// Session returns the current session.
func (s *Store) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token returns the current bearer token, "" when logged out.
// Store satisfies api.TokenSource through it.
func (s *Store) Token() string {
	return s.Session().Token()
}

// Authenticated reports whether a user is logged in.
func (s *Store) Authenticated() bool {
	return s.Session().Authenticated()
}

// Login replaces the session with a logged-in one. The snapshot is written
// first; if that fails the in-memory session is left unchanged.
func (s *Store) Login(ctx context.Context, user models.UserProfile, token string) error {
	next, err := Login(user, token)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.current = next
	return nil
}

// Logout clears the session. The in-memory session is always cleared; a
// failure to persist the cleared snapshot is returned to the caller.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Logout()
	return s.persist(ctx, s.current)
}

func (s *Store) persist(ctx context.Context, sess Session) error {
	data, err := Encode(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.storage.Save(ctx, data); err != nil {
		s.logger.Error(ctx, "failed to persist session", "error", err)
		return errors.Join(ErrPersist, err)
	}
	return nil
}

// ErrPersist marks failures to write the snapshot.
var ErrPersist = errors.New("session snapshot not saved")

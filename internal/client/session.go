package client

import (
	"errors"
	"log/slog"

	"github.com/Jazz7-Dev/FoodY.com/internal/localstore"
)

// tokenKey is the fixed storage key the session token lives under.
const tokenKey = "token"

// Session holds the bearer token for the current identity, persisted to
// local storage so it survives restarts. Storage failures are logged; the
// in-memory token stays authoritative.
type Session struct {
	storage  *localstore.Store
	log      *slog.Logger
	token    string
	onChange []func()
}

func NewSession(storage *localstore.Store, log *slog.Logger) *Session {
	s := &Session{storage: storage, log: log}

	raw, err := storage.Load(tokenKey)
	if err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			log.Warn("session load failed", "error", err)
		}
		return s
	}
	s.token = string(raw)
	return s
}

// OnIdentityChange registers a callback fired whenever the token changes;
// fetchers subscribe here to invalidate superseded requests.
func (s *Session) OnIdentityChange(fn func()) {
	s.onChange = append(s.onChange, fn)
}

func (s *Session) Token() string { return s.token }

func (s *Session) LoggedIn() bool { return s.token != "" }

func (s *Session) SetToken(token string) {
	s.token = token
	if err := s.storage.Save(tokenKey, []byte(token)); err != nil {
		s.log.Warn("session save failed", "error", err)
	}
	for _, fn := range s.onChange {
		fn()
	}
}

func (s *Session) Clear() {
	s.token = ""
	if err := s.storage.Delete(tokenKey); err != nil {
		s.log.Warn("session clear failed", "error", err)
	}
	for _, fn := range s.onChange {
		fn()
	}
}

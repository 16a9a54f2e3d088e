package client

import (
	"sync"

	"github.com/pablotanner/RocketRealtor/internal/domain"
)

// Session holds the authenticated identity for the whole process.
// It is filled on login, emptied on logout, and handed explicitly to every Client.
type Session struct {
	mu       sync.RWMutex
	user     *domain.User
	onLogout []func()
}

func NewSession() *Session { return &Session{} }

// Login stores user as the current identity
func (s *Session) Login(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

// Logout clears the identity and runs the registered logout hooks
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	hooks := append([]func(){}, s.onLogout...)
	s.mu.Unlock()

	for _, h := range hooks {
		h()
	}
}

// Current returns a copy of the logged in user
func (s *Session) Current() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// OnLogout registers fn to run after every Logout
func (s *Session) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}

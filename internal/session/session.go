// Package session holds process-wide authentication state. The store is
// constructed once at startup and handed to the components that need
// it; it is the only writer of the current user.
package session

import (
	"sync"

	"genie/internal/models"
)

type Store struct {
	mu     sync.Mutex
	user   *models.User
	nextID int
	subs   map[int]func(*models.User)
}

func NewStore() *Store {
	return &Store{subs: map[int]func(*models.User){}}
}

// Current returns the authenticated user, or nil when signed out.
func (s *Store) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Store) SignIn(u *models.User) {
	s.set(u)
}

func (s *Store) SignOut() {
	s.set(nil)
}

// Subscribe registers a current-user change listener and returns a
// cancel func. The listener fires on every sign-in and sign-out.
func (s *Store) Subscribe(fn func(*models.User)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) set(u *models.User) {
	s.mu.Lock()
	s.user = u
	fns := make([]func(*models.User), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(u)
	}
}

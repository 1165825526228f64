// Package memory provides in-memory store implementations. State lives for
// the process lifetime only.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/artpar/userhub/domain/user"
	"github.com/artpar/userhub/ports"
)

// UserStore is the in-memory implementation of ports.UserStore.
//
// A single mutex guards the id counter, the email index, and the user map.
// Each mutation runs in one critical section, so concurrent update/delete on
// the same id stay linearized. Callers validate input before entering the
// store; the lock is never held across validation or I/O.
type UserStore struct {
	mu     sync.RWMutex
	users  map[int]user.User
	emails map[string]struct{}
	nextID int
}

// NewUserStore creates an empty store. The first assigned id is 1.
func NewUserStore() *UserStore {
	return &UserStore{
		users:  make(map[int]user.User),
		emails: make(map[string]struct{}),
		nextID: 1,
	}
}

// Insert assigns the next id to u, registers its email, and stores it.
// The counter advances even when the email is already taken, so a failed
// insert permanently skips an id. Ids are never reused.
func (s *UserStore) Insert(ctx context.Context, u user.User) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.nextID
	s.nextID++

	if _, taken := s.emails[u.Email]; taken {
		return user.User{}, ports.ErrEmailTaken
	}
	s.emails[u.Email] = struct{}{}
	s.users[u.ID] = u
	return u, nil
}

// List returns all stored users ordered by ascending id.
func (s *UserStore) List(ctx context.Context) []user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]user.User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// Get retrieves a user by id.
func (s *UserStore) Get(ctx context.Context, id int) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, ports.ErrNotFound
	}
	return u, nil
}

// Apply overwrites the supplied fields onto the stored user. When the email
// changes, the new value is checked against the index and both index entries
// are swapped in the same critical section as the record mutation. Supplying
// the current email again is a no-op for the index.
func (s *UserStore) Apply(ctx context.Context, id int, fields user.Fields) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, ports.ErrNotFound
	}

	if email, supplied := fields.Email(); supplied && email != u.Email {
		if _, taken := s.emails[email]; taken {
			return user.User{}, ports.ErrEmailTaken
		}
		s.emails[email] = struct{}{}
		delete(s.emails, u.Email)
	}

	u = user.Apply(u, fields)
	s.users[id] = u
	return u, nil
}

// Delete removes the user and its email index entry atomically with respect
// to concurrent create/update on the same email value.
func (s *UserStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return ports.ErrNotFound
	}
	delete(s.emails, u.Email)
	delete(s.users, id)
	return nil
}

// Count returns the number of stored users.
func (s *UserStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Ensure interface compliance.
var _ ports.UserStore = (*UserStore)(nil)

// Package ports defines the interfaces between the application core and
// its adapters, plus the sentinel errors shared across implementations.
package ports

import (
	"context"
	"errors"

	"github.com/artpar/userhub/domain/user"
)

var (
	// ErrNotFound is returned when no user exists for an id.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned when an email is already registered to
	// another user.
	ErrEmailTaken = errors.New("email is not unique")
)

// UserStore owns the authoritative user collection and its email
// uniqueness index.
type UserStore interface {
	// Insert assigns the next id to u, registers its email, and stores it.
	// On ErrEmailTaken the id is still consumed and nothing is stored.
	Insert(ctx context.Context, u user.User) (user.User, error)

	// List returns all stored users ordered by ascending id.
	List(ctx context.Context) []user.User

	// Get retrieves a user by id.
	Get(ctx context.Context, id int) (user.User, error)

	// Apply overwrites the supplied fields onto the stored user, adjusting
	// the email index when the email changes.
	Apply(ctx context.Context, id int, fields user.Fields) (user.User, error)

	// Delete removes the user and its email index entry.
	Delete(ctx context.Context, id int) error

	// Count returns the number of stored users.
	Count(ctx context.Context) int
}

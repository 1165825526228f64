// Package app contains application services that orchestrate domain logic
// over the ports.
package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/artpar/userhub/domain/user"
	"github.com/artpar/userhub/pkg/httperr"
	"github.com/artpar/userhub/ports"
	"github.com/rs/zerolog"
)

// UserService implements the user resource operations: schema validation,
// id-text resolution, and translation of store errors into status errors.
// All validation runs before the store is entered, outside any lock.
type UserService struct {
	store  ports.UserStore
	logger zerolog.Logger
}

// NewUserService creates a user service backed by the given store.
func NewUserService(store ports.UserStore, logger zerolog.Logger) *UserService {
	return &UserService{store: store, logger: logger}
}

// Create validates the full field set, stores a new user, and returns its
// Ref. The id counter advances even when the email is already taken.
func (s *UserService) Create(ctx context.Context, fields user.Fields) (user.Ref, error) {
	if missing := user.Missing(fields); len(missing) > 0 {
		return user.Ref{}, httperr.Validation("missing fields: " + strings.Join(missing, ", "))
	}
	if err := user.Validate(fields); err != nil {
		return user.Ref{}, httperr.Validation(err.Error())
	}

	u, err := s.store.Insert(ctx, user.FromFields(fields))
	if err != nil {
		if errors.Is(err, ports.ErrEmailTaken) {
			return user.Ref{}, httperr.Conflict("email is not unique")
		}
		return user.Ref{}, err
	}

	s.logger.Info().Int("id", u.ID).Msg("user created")
	return user.NewRef(u), nil
}

// List returns all users ordered by ascending id.
func (s *UserService) List(ctx context.Context) []user.User {
	return s.store.List(ctx)
}

// Get returns the user identified by idText. A non-integer id resolves to
// not found, same as an unknown id.
func (s *UserService) Get(ctx context.Context, idText string) (user.User, error) {
	id, err := parseID(idText)
	if err != nil {
		return user.User{}, err
	}
	u, err := s.store.Get(ctx, id)
	if err != nil {
		return user.User{}, notFound(id)
	}
	return u, nil
}

// Update validates the partial field set and applies it to the stored user.
// Fields not supplied are untouched.
func (s *UserService) Update(ctx context.Context, idText string, fields user.Fields) (user.User, error) {
	id, err := parseID(idText)
	if err != nil {
		return user.User{}, err
	}
	if err := user.Validate(fields); err != nil {
		return user.User{}, httperr.Validation(err.Error())
	}

	u, err := s.store.Apply(ctx, id, fields)
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return user.User{}, notFound(id)
	case errors.Is(err, ports.ErrEmailTaken):
		return user.User{}, httperr.Conflict("email is not unique")
	case err != nil:
		return user.User{}, err
	}

	s.logger.Info().Int("id", u.ID).Msg("user updated")
	return u, nil
}

// Delete removes the user identified by idText.
func (s *UserService) Delete(ctx context.Context, idText string) error {
	id, err := parseID(idText)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return notFound(id)
		}
		return err
	}
	s.logger.Info().Int("id", id).Msg("user deleted")
	return nil
}

// Count returns the number of stored users.
func (s *UserService) Count(ctx context.Context) int {
	return s.store.Count(ctx)
}

func parseID(idText string) (int, error) {
	id, err := strconv.Atoi(idText)
	if err != nil {
		return 0, httperr.NotFound(fmt.Sprintf("user %q is not found", idText))
	}
	return id, nil
}

func notFound(id int) error {
	return httperr.NotFound(fmt.Sprintf("user %d is not found", id))
}

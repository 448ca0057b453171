package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/openrbac/rbac-admin/internal/rbac/domain"
	"github.com/openrbac/rbac-admin/internal/rbac/store"
)

type UsersService struct {
	Store store.Store
}

// OptField is a tri-state update field: absent (Set false), explicitly
// null (Set true, Value nil), or a value (Set true, Value non-nil).
// User updates need all three because a present null overwrites the
// stored value while an absent field leaves it alone.
type OptField struct {
	Set   bool
	Value *string
}

// UserUpdate carries the fields of a user update request. Name has only
// two meaningful states: nil means not sent, and a sent empty string
// keeps the existing name (it is not an error).
type UserUpdate struct {
	Name   *string
	Role   OptField
	Email  OptField
	Phone  OptField
	Branch OptField
}

// List returns all users ordered by id. A non-empty filter matches
// case-insensitively as a substring of name, email, role or branch.
func (s *UsersService) List(ctx context.Context, filter string) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx, strings.TrimSpace(filter))
}

// Get fetches the full user, or store.ErrNotFound.
func (s *UsersService) Get(ctx context.Context, id int64) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

// Create persists a new user. The name must be non-blank and unused;
// empty optional fields are stored as absent, not as empty strings.
func (s *UsersService) Create(
	ctx context.Context,
	name, role, email, phone, branch string,
) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.User{}, ErrMissingName
	}

	var created domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByName(ctx, name); err == nil {
			return ErrUserExists
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		u := domain.User{
			Name:      name,
			Role:      normalizeOptional(role),
			Email:     normalizeOptional(email),
			Phone:     normalizeOptional(phone),
			Branch:    normalizeOptional(branch),
			CreatedAt: time.Now().UTC(),
		}
		id, err := tx.Users().CreateUser(ctx, u)
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrUserExists
			}
			return err
		}
		u.ID = id
		created = u
		return nil
	})
	return created, err
}

// Update applies a partial update. Only fields present in upd are
// considered. A non-empty name must not collide with a different user;
// an empty name keeps the stored one. Optional fields overwrite the
// stored value verbatim when present, including explicit null.
func (s *UsersService) Update(ctx context.Context, id int64, upd UserUpdate) (domain.User, error) {
	var updated domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByID(ctx, id)
		if err != nil {
			return err
		}

		if upd.Name != nil {
			name := strings.TrimSpace(*upd.Name)
			if name != "" {
				other, err := tx.Users().GetUserByName(ctx, name)
				if err == nil && other.ID != id {
					return ErrUserNameConflict
				}
				if err != nil && !errors.Is(err, store.ErrNotFound) {
					return err
				}
				u.Name = name
			}
		}
		if upd.Role.Set {
			u.Role = upd.Role.Value
		}
		if upd.Email.Set {
			u.Email = upd.Email.Value
		}
		if upd.Phone.Set {
			u.Phone = upd.Phone.Value
		}
		if upd.Branch.Set {
			u.Branch = upd.Branch.Value
		}

		if err := tx.Users().UpdateUser(ctx, u); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrUserNameConflict
			}
			return err
		}
		updated = u
		return nil
	})
	return updated, err
}

// Delete removes the user permanently. Roles listing this user's name in
// assigned_users keep the stale entry; there is deliberately no cascade.
func (s *UsersService) Delete(ctx context.Context, id int64) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByID(ctx, id); err != nil {
			return err
		}
		return tx.Users().DeleteUser(ctx, id)
	})
}

// normalizeOptional trims the input and converts empty strings to absent.
func normalizeOptional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

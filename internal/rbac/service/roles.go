package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/openrbac/rbac-admin/internal/rbac/domain"
	"github.com/openrbac/rbac-admin/internal/rbac/store"
)

type RolesService struct {
	Store store.Store
}

// RoleUpdate carries the fields of a role update request. A nil field was
// not sent and leaves the stored value unchanged; a non-nil pointer to an
// empty map or slice is a valid wholesale replacement.
type RoleUpdate struct {
	Name          *string
	Privileges    *domain.PrivilegeMap
	AssignedUsers *[]string
}

// List returns summaries of all roles ordered by id. A non-empty filter
// narrows to roles whose name contains it, case-insensitively.
func (s *RolesService) List(ctx context.Context, filter string) ([]domain.RoleSummary, error) {
	roles, err := s.Store.Roles().ListRoles(ctx, strings.TrimSpace(filter))
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.RoleSummary, len(roles))
	for i, r := range roles {
		summaries[i] = r.Summary()
	}
	return summaries, nil
}

// Get fetches the full role, or store.ErrNotFound.
func (s *RolesService) Get(ctx context.Context, id int64) (domain.Role, error) {
	return s.Store.Roles().GetRoleByID(ctx, id)
}

// Create persists a new role. Privileges and assigned users default to
// empty when nil. Fails with ErrMissingName on a blank name and
// ErrRoleExists when the name is taken; the check runs inside a
// transaction and the UNIQUE constraint backs it against races.
func (s *RolesService) Create(
	ctx context.Context,
	name string,
	privileges domain.PrivilegeMap,
	assignedUsers []string,
) (domain.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Role{}, ErrMissingName
	}
	if privileges == nil {
		privileges = domain.PrivilegeMap{}
	}
	if assignedUsers == nil {
		assignedUsers = []string{}
	}

	var created domain.Role
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Roles().GetRoleByName(ctx, name); err == nil {
			return ErrRoleExists
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		role := domain.Role{
			Name:          name,
			Privileges:    privileges,
			AssignedUsers: assignedUsers,
			CreatedAt:     time.Now().UTC(),
		}
		id, err := tx.Roles().CreateRole(ctx, role)
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrRoleExists
			}
			return err
		}
		role.ID = id
		created = role
		return nil
	})
	return created, err
}

// Update applies a partial update. Fields absent from upd keep their
// stored value; present fields replace it wholesale. A present but empty
// name is ignored rather than rejected. Renaming to a name held by a
// different role fails with ErrRoleNameConflict.
func (s *RolesService) Update(ctx context.Context, id int64, upd RoleUpdate) (domain.Role, error) {
	var updated domain.Role
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		role, err := tx.Roles().GetRoleByID(ctx, id)
		if err != nil {
			return err
		}

		if upd.Name != nil && *upd.Name != "" {
			other, err := tx.Roles().GetRoleByName(ctx, *upd.Name)
			if err == nil && other.ID != id {
				return ErrRoleNameConflict
			}
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return err
			}
			role.Name = *upd.Name
		}
		if upd.Privileges != nil {
			role.Privileges = *upd.Privileges
		}
		if upd.AssignedUsers != nil {
			role.AssignedUsers = *upd.AssignedUsers
		}

		if err := tx.Roles().UpdateRole(ctx, role); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrRoleNameConflict
			}
			return err
		}
		updated = role
		return nil
	})
	return updated, err
}

// Delete removes the role permanently. Users whose role field names it
// keep the now-dangling string; there is deliberately no cascade.
func (s *RolesService) Delete(ctx context.Context, id int64) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Roles().GetRoleByID(ctx, id); err != nil {
			return err
		}
		return tx.Roles().DeleteRole(ctx, id)
	})
}

// Duplicate clones the role's privileges and assigned users under the name
// "<original> Copy" with a fresh id and creation time. If that name is
// already taken the operation fails with ErrRoleExists rather than
// breaking the uniqueness invariant.
func (s *RolesService) Duplicate(ctx context.Context, id int64) (domain.Role, error) {
	var created domain.Role
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		src, err := tx.Roles().GetRoleByID(ctx, id)
		if err != nil {
			return err
		}

		copyName := src.Name + " Copy"
		if _, err := tx.Roles().GetRoleByName(ctx, copyName); err == nil {
			return ErrRoleExists
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		role := domain.Role{
			Name:          copyName,
			Privileges:    src.Privileges.Clone(),
			AssignedUsers: append([]string(nil), src.AssignedUsers...),
			CreatedAt:     time.Now().UTC(),
		}
		newID, err := tx.Roles().CreateRole(ctx, role)
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrRoleExists
			}
			return err
		}
		role.ID = newID
		created = role
		return nil
	})
	return created, err
}

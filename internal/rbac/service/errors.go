package service

import "errors"

// Per-operation sentinel errors. The HTTP layer maps each to the exact
// status code and message the API promises, so they are deliberately
// fine-grained: "role exists" on create is a different wire message from
// "role name conflict" on rename.
var (
	// ErrMissingName is returned when a create request carries a name that
	// is empty or whitespace-only after trimming.
	ErrMissingName = errors.New("service: missing name")

	// ErrRoleExists is returned when creating or duplicating a role whose
	// name is already taken.
	ErrRoleExists = errors.New("service: role exists")

	// ErrRoleNameConflict is returned when renaming a role to a name held
	// by a different role.
	ErrRoleNameConflict = errors.New("service: role name conflict")

	// ErrUserExists is returned when creating a user whose name is already
	// taken.
	ErrUserExists = errors.New("service: user exists")

	// ErrUserNameConflict is returned when renaming a user to a name held
	// by a different user.
	ErrUserNameConflict = errors.New("service: user name conflict")
)

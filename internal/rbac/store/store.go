package store

import (
	"context"
	"errors"

	"github.com/openrbac/rbac-admin/internal/rbac/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. It exposes sub-repositories to keep concerns tidy
// and testable.
type Store interface {
	Users() Users
	Roles() Roles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run the check-then-act sequences the services use
	// (name uniqueness pre-checks followed by an insert or update).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by its surrogate id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByName returns a user by its unique name (the natural key
	// roles reference).
	GetUserByName(ctx context.Context, name string) (domain.User, error)

	// ListUsers returns users ordered by id ascending. A non-empty filter
	// matches case-insensitively as a substring of name, email, role or
	// branch.
	ListUsers(ctx context.Context, filter string) ([]domain.User, error)

	// CreateUser inserts a new user and returns the store-assigned id.
	// Returns ErrAlreadyExists when the name is taken.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// UpdateUser replaces the mutable columns of the row identified by u.ID.
	UpdateUser(ctx context.Context, u domain.User) error

	// DeleteUser removes the user permanently. No cascade: roles keep any
	// stale assigned-user entries.
	DeleteUser(ctx context.Context, id int64) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Roles interface {
	// GetRoleByID returns a role by its surrogate id.
	GetRoleByID(ctx context.Context, id int64) (domain.Role, error)

	// GetRoleByName returns a role by its unique name.
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)

	// ListRoles returns roles ordered by id ascending. A non-empty filter
	// matches case-insensitively as a substring of the name.
	ListRoles(ctx context.Context, filter string) ([]domain.Role, error)

	// CreateRole inserts a new role and returns the store-assigned id.
	// Returns ErrAlreadyExists when the name is taken.
	CreateRole(ctx context.Context, r domain.Role) (int64, error)

	// UpdateRole replaces name, privileges and assigned_users of the row
	// identified by r.ID.
	UpdateRole(ctx context.Context, r domain.Role) error

	// DeleteRole removes the role permanently. No cascade: users keep any
	// stale role name.
	DeleteRole(ctx context.Context, id int64) error

	// IsEmpty returns true if there are no roles.
	IsEmpty(ctx context.Context) (bool, error)
}

package adminsdk

// Role is the full wire representation of a role.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// Privileges maps a module name to the privilege kinds granted in it.
	Privileges map[string][]string `json:"privileges"`

	// AssignedUsers lists user names. Entries are not validated against
	// the user collection and may be stale.
	AssignedUsers []string `json:"assigned_users"`

	CreatedAt string `json:"created_at"`
}

// RoleSummary is the list projection of a role: counts instead of the
// full privileges mapping.
type RoleSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// PrivilegesCount sums distinct privilege kinds across modules.
	PrivilegesCount int `json:"privileges_count"`

	// ModulesCount is the number of module keys, empty lists included.
	ModulesCount int `json:"modules_count"`

	CreatedAt     string   `json:"created_at"`
	AssignedUsers []string `json:"assigned_users"`
}

// User is the full wire representation of a user. Optional fields
// serialise as null when absent.
type User struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Role      *string `json:"role"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Branch    *string `json:"branch"`
	CreatedAt string  `json:"created_at"`
}

// CreateRoleRequest is the body of POST /api/roles.
type CreateRoleRequest struct {
	Name          string              `json:"name"`
	Privileges    map[string][]string `json:"privileges,omitempty"`
	AssignedUsers []string            `json:"assigned_users,omitempty"`
}

// UpdateRoleRequest is the body of PUT /api/roles/{id}. Omitted fields
// leave the stored value unchanged; an explicitly empty mapping or list
// replaces the stored value with empty.
type UpdateRoleRequest struct {
	Name          *string              `json:"name,omitempty"`
	Privileges    *map[string][]string `json:"privileges,omitempty"`
	AssignedUsers *[]string            `json:"assigned_users,omitempty"`
}

// CreateUserRequest is the body of POST /api/users. Empty optional
// fields are stored as absent.
type CreateUserRequest struct {
	Name   string `json:"name"`
	Role   string `json:"role,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Branch string `json:"branch,omitempty"`
}

// RoleResponse is the success envelope for role mutations.
type RoleResponse struct {
	Message string `json:"message"`
	Role    Role   `json:"role"`
}

// UserResponse is the success envelope for user mutations.
type UserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// MessageResponse is the success envelope for deletes.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error envelope for every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

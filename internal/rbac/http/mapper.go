package http

import (
	"time"

	"github.com/openrbac/rbac-admin/internal/rbac/domain"
	"github.com/openrbac/rbac-admin/pkg/adminsdk"
)

func mapRole(r domain.Role) adminsdk.Role {
	return adminsdk.Role{
		ID:            r.ID,
		Name:          r.Name,
		Privileges:    r.Privileges,
		AssignedUsers: r.AssignedUsers,
		CreatedAt:     formatTime(r.CreatedAt),
	}
}

func mapRoleSummary(s domain.RoleSummary) adminsdk.RoleSummary {
	return adminsdk.RoleSummary{
		ID:              s.ID,
		Name:            s.Name,
		PrivilegesCount: s.PrivilegesCount,
		ModulesCount:    s.ModulesCount,
		CreatedAt:       formatTime(s.CreatedAt),
		AssignedUsers:   s.AssignedUsers,
	}
}

func mapUser(u domain.User) adminsdk.User {
	return adminsdk.User{
		ID:        u.ID,
		Name:      u.Name,
		Role:      u.Role,
		Email:     u.Email,
		Phone:     u.Phone,
		Branch:    u.Branch,
		CreatedAt: formatTime(u.CreatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

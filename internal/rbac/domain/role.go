package domain

import "time"

// PrivilegeMap maps a module name to the privilege kinds a role grants
// within it. Stored as JSON text in the role row.
type PrivilegeMap map[string][]string

// DistinctCount sums, across modules, the number of distinct privilege
// kinds per module. Duplicate kinds within one module collapse before
// counting; the same kind in two modules counts twice.
func (p PrivilegeMap) DistinctCount() int {
	total := 0
	for _, kinds := range p {
		seen := make(map[string]struct{}, len(kinds))
		for _, k := range kinds {
			seen[k] = struct{}{}
		}
		total += len(seen)
	}
	return total
}

// Clone returns a deep copy, so duplicated roles do not share slices.
func (p PrivilegeMap) Clone() PrivilegeMap {
	out := make(PrivilegeMap, len(p))
	for module, kinds := range p {
		out[module] = append([]string(nil), kinds...)
	}
	return out
}

type Role struct {
	ID            int64
	Name          string
	Privileges    PrivilegeMap
	AssignedUsers []string // user names; not validated against the user table
	CreatedAt     time.Time
}

// RoleSummary is the list projection of a role: privilege/module counts
// instead of the full mapping.
type RoleSummary struct {
	ID              int64
	Name            string
	PrivilegesCount int
	ModulesCount    int
	CreatedAt       time.Time
	AssignedUsers   []string
}

// Summary reduces the role to its list projection.
func (r Role) Summary() RoleSummary {
	return RoleSummary{
		ID:              r.ID,
		Name:            r.Name,
		PrivilegesCount: r.Privileges.DistinctCount(),
		ModulesCount:    len(r.Privileges),
		CreatedAt:       r.CreatedAt,
		AssignedUsers:   r.AssignedUsers,
	}
}

package domain

// PrivilegeKinds is the closed vocabulary of actions a role may permit
// within a module. The store itself is permissive and accepts unknown
// kinds; this list drives the UI and default seeding only.
var PrivilegeKinds = []string{"create", "read", "update", "delete", "bulkupload"}

// DefaultModules is the suggested list of functional modules shown when
// composing a new role. It is UI guidance, not an enforced constraint:
// roles may carry privileges for module names outside this list.
var DefaultModules = []string{
	"Manage Roles",
	"Manage Branches",
	"Manage Relationship Managers",
	"Manage States",
	"Manage Satellites",
	"POSP",
	"Premium Register",
	"Commission Statements",
}

// KnownPrivilegeKind reports whether kind is part of the fixed vocabulary.
func KnownPrivilegeKind(kind string) bool {
	for _, k := range PrivilegeKinds {
		if k == kind {
			return true
		}
	}
	return false
}

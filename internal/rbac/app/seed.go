package app

import (
	"context"
	"time"

	"github.com/openrbac/rbac-admin/internal/rbac/domain"
	"github.com/openrbac/rbac-admin/internal/rbac/store"
)

// seedDefaults populates an empty database with a starter set of users
// and roles so a fresh install has something to click around in. Users
// and roles are seeded independently: wiping only one table reseeds
// only that table.
func (app *Application) seedDefaults(ctx context.Context) error {
	return app.db.WithTx(ctx, func(tx store.Tx) error {
		now := time.Now().UTC()

		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if empty {
			for _, u := range defaultUsers(now) {
				if _, err := tx.Users().CreateUser(ctx, u); err != nil {
					return err
				}
			}
			app.logger.Info("seeded default users")
		}

		empty, err = tx.Roles().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if empty {
			for _, r := range defaultRoles(now) {
				if _, err := tx.Roles().CreateRole(ctx, r); err != nil {
					return err
				}
			}
			app.logger.Info("seeded default roles")
		}

		return nil
	})
}

func defaultUsers(now time.Time) []domain.User {
	mk := func(name, role, phone, branch string) domain.User {
		return domain.User{
			Name:      name,
			Role:      &role,
			Email:     &name,
			Phone:     &phone,
			Branch:    &branch,
			CreatedAt: now,
		}
	}
	return []domain.User{
		mk("admin@company.com", "Admin", "9999999999", "HO"),
		mk("ops@company.com", "Ops User", "8888888888", "HO"),
		mk("branch1@company.com", "Branch User", "7777777777", "Branch-1"),
		mk("branch2@company.com", "Branch User", "6666666666", "Branch-2"),
		mk("rm1@company.com", "RM User", "5555555555", "HO"),
	}
}

func defaultRoles(now time.Time) []domain.Role {
	mods := domain.DefaultModules
	mk := func(name string, privs domain.PrivilegeMap, assigned ...string) domain.Role {
		if assigned == nil {
			assigned = []string{}
		}
		return domain.Role{
			Name:          name,
			Privileges:    privs,
			AssignedUsers: assigned,
			CreatedAt:     now,
		}
	}
	return []domain.Role{
		mk("Admin", privsFor(mods, domain.PrivilegeKinds...), "admin@company.com"),
		mk("Ops User", privsFor(mods[:6], "read", "update"), "ops@company.com"),
		mk("Exp User", privsFor(mods[:2], "read")),
		mk("super user", privsFor(mods[:5], "create", "read", "update", "delete"), "branch1@company.com"),
		mk("Exp super user", privsFor(mods[:5], "read", "update"), "branch2@company.com"),
		mk("HO Finance", privsFor(mods[:4], "read", "update"), "rm1@company.com"),
		mk("Operations manager", privsFor(mods[:5], "read", "update")),
		mk("Branch user", privsFor(mods[:5], "create", "read", "update")),
	}
}

func privsFor(modules []string, kinds ...string) domain.PrivilegeMap {
	pm := make(domain.PrivilegeMap, len(modules))
	for _, m := range modules {
		pm[m] = append([]string(nil), kinds...)
	}
	return pm
}

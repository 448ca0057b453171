package sqlite

import (
	"context"
	"database/sql"

	"github.com/openrbac/rbac-admin/internal/rbac/domain"
)

type rolesRepo struct {
	db dbtx
}

const roleColumns = `id, name, privileges, assigned_users, created_at`

func (r *rolesRepo) GetRoleByID(ctx context.Context, id int64) (domain.Role, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+roleColumns+` FROM role WHERE id = ?`, id)
	return scanRole(row)
}

func (r *rolesRepo) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+roleColumns+` FROM role WHERE name = ?`, name)
	return scanRole(row)
}

func (r *rolesRepo) ListRoles(ctx context.Context, filter string) ([]domain.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM role ORDER BY id`
	args := []any{}
	if filter != "" {
		query = `SELECT ` + roleColumns + ` FROM role
			WHERE instr(lower(name), lower(?)) > 0 ORDER BY id`
		args = append(args, filter)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		role, err := scanRoleRows(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) (int64, error) {
	privs, err := encodePrivileges(role.Privileges)
	if err != nil {
		return 0, err
	}
	assigned, err := encodeAssignedUsers(role.AssignedUsers)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO role (name, privileges, assigned_users, created_at) VALUES (?, ?, ?, ?)`,
		role.Name, privs, assigned, formatTime(role.CreatedAt),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *rolesRepo) UpdateRole(ctx context.Context, role domain.Role) error {
	privs, err := encodePrivileges(role.Privileges)
	if err != nil {
		return err
	}
	assigned, err := encodeAssignedUsers(role.AssignedUsers)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE role SET name = ?, privileges = ?, assigned_users = ? WHERE id = ?`,
		role.Name, privs, assigned, role.ID,
	)
	return mapConstraint(err)
}

func (r *rolesRepo) DeleteRole(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM role WHERE id = ?`, id)
	return err
}

func (r *rolesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM role`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func scanRole(row *sql.Row) (domain.Role, error) {
	var (
		role      domain.Role
		privs     string
		assigned  string
		createdAt sql.NullString
	)
	if err := row.Scan(&role.ID, &role.Name, &privs, &assigned, &createdAt); err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	role.Privileges = decodePrivileges(privs)
	role.AssignedUsers = decodeAssignedUsers(assigned)
	role.CreatedAt = parseTime(createdAt)
	return role, nil
}

func scanRoleRows(rows *sql.Rows) (domain.Role, error) {
	var (
		role      domain.Role
		privs     string
		assigned  string
		createdAt sql.NullString
	)
	if err := rows.Scan(&role.ID, &role.Name, &privs, &assigned, &createdAt); err != nil {
		return domain.Role{}, err
	}
	role.Privileges = decodePrivileges(privs)
	role.AssignedUsers = decodeAssignedUsers(assigned)
	role.CreatedAt = parseTime(createdAt)
	return role, nil
}

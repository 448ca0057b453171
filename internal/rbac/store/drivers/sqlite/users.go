package sqlite

import (
	"context"
	"database/sql"

	"github.com/openrbac/rbac-admin/internal/rbac/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, name, role, email, phone, branch, created_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM user WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByName(ctx context.Context, name string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM user WHERE name = ?`, name)
	return scanUser(row)
}

func (r *usersRepo) ListUsers(ctx context.Context, filter string) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM user ORDER BY id`
	args := []any{}
	if filter != "" {
		// Substring match across name, email, role and branch, matching the
		// behaviour of the original panel's search box. NULL columns read as
		// empty strings so they never match.
		query = `SELECT ` + userColumns + ` FROM user
			WHERE instr(lower(name), lower(?)) > 0
			   OR instr(lower(IFNULL(email, '')), lower(?)) > 0
			   OR instr(lower(IFNULL(role, '')), lower(?)) > 0
			   OR instr(lower(IFNULL(branch, '')), lower(?)) > 0
			ORDER BY id`
		args = append(args, filter, filter, filter, filter)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUserRows(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO user (name, role, email, phone, branch, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		u.Name,
		mapOptionalString(u.Role),
		mapOptionalString(u.Email),
		mapOptionalString(u.Phone),
		mapOptionalString(u.Branch),
		formatTime(u.CreatedAt),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE user SET name = ?, role = ?, email = ?, phone = ?, branch = ? WHERE id = ?`,
		u.Name,
		mapOptionalString(u.Role),
		mapOptionalString(u.Email),
		mapOptionalString(u.Phone),
		mapOptionalString(u.Branch),
		u.ID,
	)
	return mapConstraint(err)
}

func (r *usersRepo) DeleteUser(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM user WHERE id = ?`, id)
	return err
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM user`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u                          domain.User
		role, email, phone, branch sql.NullString
		createdAt                  sql.NullString
	)
	if err := row.Scan(&u.ID, &u.Name, &role, &email, &phone, &branch, &createdAt); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Role = mapNullStringPtr(role)
	u.Email = mapNullStringPtr(email)
	u.Phone = mapNullStringPtr(phone)
	u.Branch = mapNullStringPtr(branch)
	u.CreatedAt = parseTime(createdAt)
	return u, nil
}

func scanUserRows(rows *sql.Rows) (domain.User, error) {
	var (
		u                          domain.User
		role, email, phone, branch sql.NullString
		createdAt                  sql.NullString
	)
	if err := rows.Scan(&u.ID, &u.Name, &role, &email, &phone, &branch, &createdAt); err != nil {
		return domain.User{}, err
	}
	u.Role = mapNullStringPtr(role)
	u.Email = mapNullStringPtr(email)
	u.Phone = mapNullStringPtr(phone)
	u.Branch = mapNullStringPtr(branch)
	u.CreatedAt = parseTime(createdAt)
	return u, nil
}

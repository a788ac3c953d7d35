package store

import (
	"context"
	"fmt"

	"pc-management/internal/database"
	"pc-management/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `u.id, u.username, u.email, u.full_name, u.role, u.is_active, u.department_id,
		d.id, d.name`

// scanUser 讀取 users LEFT JOIN departments 的一列
func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	var deptID *int
	var deptName *string
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FullName,
		&u.Role,
		&u.IsActive,
		&u.DepartmentID,
		&deptID,
		&deptName,
	); err != nil {
		return nil, err
	}
	if deptID != nil && deptName != nil {
		u.Department = &model.Department{ID: *deptID, Name: *deptName}
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users u
		 LEFT JOIN departments d ON d.id = u.department_id
		 WHERE u.id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users u
		 LEFT JOIN departments d ON d.id = u.department_id
		 WHERE u.email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func ListUsers(ctx context.Context, db database.DB, skip, limit int) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+`
		 FROM users u
		 LEFT JOIN departments d ON d.id = u.department_id
		 ORDER BY u.id OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		out = append(out, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return out, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (username, email, full_name, department_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, role, is_active`,
		u.Username,
		u.Email,
		u.FullName,
		u.DepartmentID,
	)
	if err := row.Scan(&u.ID, &u.Role, &u.IsActive); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

package store

import (
	"context"
	"fmt"

	"pc-management/internal/database"
	"pc-management/internal/model"
)

func GetDepartmentByID(ctx context.Context, db database.DB, departmentID int) (*model.Department, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name FROM departments WHERE id = $1`,
		departmentID,
	)
	d := &model.Department{}
	if err := row.Scan(&d.ID, &d.Name); err != nil {
		return nil, fmt.Errorf("GetDepartmentByID: %w", err)
	}
	return d, nil
}

func GetDepartmentByName(ctx context.Context, db database.DB, name string) (*model.Department, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name FROM departments WHERE name = $1`,
		name,
	)
	d := &model.Department{}
	if err := row.Scan(&d.ID, &d.Name); err != nil {
		return nil, fmt.Errorf("GetDepartmentByName: %w", err)
	}
	return d, nil
}

func ListDepartments(ctx context.Context, db database.DB, skip, limit int) ([]model.Department, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name FROM departments ORDER BY id OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListDepartments: %w", err)
	}
	defer rows.Close()

	var out []model.Department
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("ListDepartments: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListDepartments: %w", err)
	}
	return out, nil
}

func CreateDepartment(ctx context.Context, db database.DB, d *model.Department) (*model.Department, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO departments (name) VALUES ($1) RETURNING id`,
		d.Name,
	)
	if err := row.Scan(&d.ID); err != nil {
		return nil, fmt.Errorf("CreateDepartment: %w", err)
	}
	return d, nil
}

package store

import (
	"context"
	"fmt"

	"pc-management/internal/database"
	"pc-management/internal/model"
)

func GetPCByID(ctx context.Context, db database.DB, pcID int) (*model.PC, error) {
	row := db.QueryRow(ctx,
		`SELECT id, serial_number, model, status FROM pcs WHERE id = $1`,
		pcID,
	)
	p := &model.PC{}
	if err := row.Scan(&p.ID, &p.SerialNumber, &p.Model, &p.Status); err != nil {
		return nil, fmt.Errorf("GetPCByID: %w", err)
	}
	return p, nil
}

func GetPCBySerialNumber(ctx context.Context, db database.DB, serial string) (*model.PC, error) {
	row := db.QueryRow(ctx,
		`SELECT id, serial_number, model, status FROM pcs WHERE serial_number = $1`,
		serial,
	)
	p := &model.PC{}
	if err := row.Scan(&p.ID, &p.SerialNumber, &p.Model, &p.Status); err != nil {
		return nil, fmt.Errorf("GetPCBySerialNumber: %w", err)
	}
	return p, nil
}

func ListPCs(ctx context.Context, db database.DB, skip, limit int) ([]model.PC, error) {
	rows, err := db.Query(ctx,
		`SELECT id, serial_number, model, status FROM pcs ORDER BY id OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListPCs: %w", err)
	}
	defer rows.Close()

	var out []model.PC
	for rows.Next() {
		var p model.PC
		if err := rows.Scan(&p.ID, &p.SerialNumber, &p.Model, &p.Status); err != nil {
			return nil, fmt.Errorf("ListPCs: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPCs: %w", err)
	}
	return out, nil
}

func CreatePC(ctx context.Context, db database.DB, p *model.PC) (*model.PC, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO pcs (serial_number, model, status)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		p.SerialNumber,
		p.Model,
		p.Status,
	)
	if err := row.Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("CreatePC: %w", err)
	}
	return p, nil
}

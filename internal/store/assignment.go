package store

import (
	"context"
	"fmt"
	"time"

	"pc-management/internal/database"
	"pc-management/internal/model"

	"github.com/jackc/pgx/v5"
)

const assignmentColumns = `a.id, a.user_id, a.pc_id, a.assignment_date, a.return_date,
		u.username, u.email, u.full_name, u.role, u.is_active, u.department_id,
		d.id, d.name,
		p.serial_number, p.model, p.status`

const assignmentFrom = ` FROM assignments a
		 JOIN users u ON u.id = a.user_id
		 JOIN pcs p ON p.id = a.pc_id
		 LEFT JOIN departments d ON d.id = u.department_id`

// scanAssignment 讀取含巢狀使用者與 PC 的一列指派紀錄
func scanAssignment(row pgx.Row) (*model.Assignment, error) {
	a := &model.Assignment{User: &model.User{}, PC: &model.PC{}}
	var deptID *int
	var deptName *string
	if err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.PCID,
		&a.AssignmentDate,
		&a.ReturnDate,
		&a.User.Username,
		&a.User.Email,
		&a.User.FullName,
		&a.User.Role,
		&a.User.IsActive,
		&a.User.DepartmentID,
		&deptID,
		&deptName,
		&a.PC.SerialNumber,
		&a.PC.Model,
		&a.PC.Status,
	); err != nil {
		return nil, err
	}
	a.User.ID = a.UserID
	a.PC.ID = a.PCID
	if deptID != nil && deptName != nil {
		a.User.Department = &model.Department{ID: *deptID, Name: *deptName}
	}
	return a, nil
}

func GetAssignmentByID(ctx context.Context, db database.DB, assignmentID int) (*model.Assignment, error) {
	row := db.QueryRow(ctx,
		`SELECT `+assignmentColumns+assignmentFrom+`
		 WHERE a.id = $1`,
		assignmentID,
	)
	a, err := scanAssignment(row)
	if err != nil {
		return nil, fmt.Errorf("GetAssignmentByID: %w", err)
	}
	return a, nil
}

func ListAssignments(ctx context.Context, db database.DB, skip, limit int) ([]model.Assignment, error) {
	rows, err := db.Query(ctx,
		`SELECT `+assignmentColumns+assignmentFrom+`
		 ORDER BY a.id OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAssignments: %w", err)
	}
	defer rows.Close()

	var out []model.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("ListAssignments: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAssignments: %w", err)
	}
	return out, nil
}

// CreateAssignment 在單一交易內建立指派並把 PC 轉為 assigned。
// PC 列先以 FOR UPDATE 鎖定並重驗可用性，兩個併發呼叫不會同時通過檢查。
func CreateAssignment(ctx context.Context, db database.DB, userID, pcID int) (*model.Assignment, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreateAssignment: %w", err)
	}
	defer tx.Rollback(ctx)

	var status model.PCStatus
	if err := tx.QueryRow(ctx,
		`SELECT status FROM pcs WHERE id = $1 FOR UPDATE`,
		pcID,
	).Scan(&status); err != nil {
		return nil, fmt.Errorf("CreateAssignment: %w", err)
	}
	if !status.CanTransition(model.StatusAssigned) {
		return nil, ErrPCUnavailable
	}

	a := &model.Assignment{UserID: userID, PCID: pcID}
	if err := tx.QueryRow(ctx,
		`INSERT INTO assignments (user_id, pc_id)
		 VALUES ($1, $2)
		 RETURNING id, assignment_date`,
		userID, pcID,
	).Scan(&a.ID, &a.AssignmentDate); err != nil {
		return nil, fmt.Errorf("CreateAssignment: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE pcs SET status = $1 WHERE id = $2`,
		model.StatusAssigned, pcID,
	); err != nil {
		return nil, fmt.Errorf("CreateAssignment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("CreateAssignment: %w", err)
	}
	return a, nil
}

// ReturnAssignment 在單一交易內設定歸還時間並把 PC 轉回 available。
func ReturnAssignment(ctx context.Context, db database.DB, assignmentID int, at time.Time) (*model.Assignment, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ReturnAssignment: %w", err)
	}
	defer tx.Rollback(ctx)

	a := &model.Assignment{ID: assignmentID}
	var returnDate *time.Time
	if err := tx.QueryRow(ctx,
		`SELECT user_id, pc_id, assignment_date, return_date
		 FROM assignments WHERE id = $1 FOR UPDATE`,
		assignmentID,
	).Scan(&a.UserID, &a.PCID, &a.AssignmentDate, &returnDate); err != nil {
		return nil, fmt.Errorf("ReturnAssignment: %w", err)
	}
	if returnDate != nil {
		return nil, ErrAlreadyReturned
	}

	if err := tx.QueryRow(ctx,
		`UPDATE assignments SET return_date = $1 WHERE id = $2 RETURNING return_date`,
		at, assignmentID,
	).Scan(&a.ReturnDate); err != nil {
		return nil, fmt.Errorf("ReturnAssignment: %w", err)
	}

	var status model.PCStatus
	if err := tx.QueryRow(ctx,
		`SELECT status FROM pcs WHERE id = $1 FOR UPDATE`,
		a.PCID,
	).Scan(&status); err != nil {
		return nil, fmt.Errorf("ReturnAssignment: %w", err)
	}
	if status.CanTransition(model.StatusAvailable) {
		if _, err := tx.Exec(ctx,
			`UPDATE pcs SET status = $1 WHERE id = $2`,
			model.StatusAvailable, a.PCID,
		); err != nil {
			return nil, fmt.Errorf("ReturnAssignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("ReturnAssignment: %w", err)
	}
	return a, nil
}

package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrPCUnavailable 表示目標 PC 不在可指派狀態
	ErrPCUnavailable = errors.New("PC is not available for assignment")
	// ErrAlreadyReturned 表示指派紀錄已經歸還
	ErrAlreadyReturned = errors.New("assignment already returned")
)

// IsNotFound 判斷錯誤是否為查無資料
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsUniqueViolation 判斷錯誤是否為唯一鍵衝突 (SQLSTATE 23505)，
// username/email/serial_number 的重複由資料庫約束把關。
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

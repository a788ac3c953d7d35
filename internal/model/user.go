// File: internal/model/user.go
package model

// RoleUser 為新使用者的預設角色，目前僅儲存不做權限判斷。
const RoleUser = "user"

type User struct {
	ID           int         `db:"id" json:"id"`
	Username     string      `db:"username" json:"username"`
	Email        string      `db:"email" json:"email"`
	FullName     *string     `db:"full_name" json:"full_name,omitempty"`
	Role         string      `db:"role" json:"role"`
	IsActive     bool        `db:"is_active" json:"is_active"`
	DepartmentID *int        `db:"department_id" json:"department_id,omitempty"`
	Department   *Department `db:"-" json:"department,omitempty"`
}

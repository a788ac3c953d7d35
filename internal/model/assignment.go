// File: internal/model/assignment.go
package model

import "time"

// Assignment 代表一筆 PC 借用紀錄，ReturnDate 為空表示仍在借用中。
type Assignment struct {
	ID             int        `db:"id" json:"id"`
	UserID         int        `db:"user_id" json:"user_id"`
	PCID           int        `db:"pc_id" json:"pc_id"`
	AssignmentDate time.Time  `db:"assignment_date" json:"assignment_date"`
	ReturnDate     *time.Time `db:"return_date" json:"return_date,omitempty"`
	User           *User      `db:"-" json:"user,omitempty"`
	PC             *PC        `db:"-" json:"pc,omitempty"`
}

// Open 回報這筆紀錄是否仍未歸還
func (a *Assignment) Open() bool {
	return a.ReturnDate == nil
}

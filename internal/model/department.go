// File: internal/model/department.go
package model

type Department struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

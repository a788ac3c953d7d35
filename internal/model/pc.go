// File: internal/model/pc.go
package model

// PCStatus 表示 PC 目前的狀態
type PCStatus string

const (
	StatusAvailable PCStatus = "available"
	StatusAssigned  PCStatus = "assigned"
	StatusInRepair  PCStatus = "in_repair"
)

// transitions 定義允許的狀態轉移，所有狀態異動都必須經過 CanTransition 檢查。
var transitions = map[PCStatus][]PCStatus{
	StatusAvailable: {StatusAssigned, StatusInRepair},
	StatusAssigned:  {StatusAvailable},
	StatusInRepair:  {StatusAvailable},
}

// Valid 回報 s 是否為已知狀態
func (s PCStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusAssigned, StatusInRepair:
		return true
	}
	return false
}

// CanTransition 回報是否允許從 s 轉移到 to
func (s PCStatus) CanTransition(to PCStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type PC struct {
	ID           int      `db:"id" json:"id"`
	SerialNumber string   `db:"serial_number" json:"serial_number"`
	Model        string   `db:"model" json:"model"`
	Status       PCStatus `db:"status" json:"status"`
}

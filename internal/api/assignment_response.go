package api

import (
	"time"

	"pc-management/internal/model"
)

// swagger:model api.AssignmentResponse
type AssignmentResponse struct {
	ID             int          `json:"id" example:"1"`
	UserID         int          `json:"user_id" example:"1"`
	PCID           int          `json:"pc_id" example:"1"`
	AssignmentDate time.Time    `json:"assignment_date" example:"2025-05-01T15:04:05Z"`
	ReturnDate     *time.Time   `json:"return_date,omitempty"`
	User           UserResponse `json:"user"`
	PC             PCResponse   `json:"pc"`
}

// NewAssignmentResponse 將指派紀錄轉為回應格式，含巢狀使用者與 PC
func NewAssignmentResponse(a *model.Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		PCID:           a.PCID,
		AssignmentDate: a.AssignmentDate,
		ReturnDate:     a.ReturnDate,
	}
	if a.User != nil {
		resp.User = NewUserResponse(a.User)
	}
	if a.PC != nil {
		resp.PC = NewPCResponse(a.PC)
	}
	return resp
}

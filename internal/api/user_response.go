package api

import "pc-management/internal/model"

// swagger:model api.UserResponse
type UserResponse struct {
	ID           int                 `json:"id" example:"1"`
	Username     string              `json:"username" example:"alice"`
	Email        string              `json:"email" example:"alice@example.com"`
	FullName     *string             `json:"full_name,omitempty" example:"Alice Chen"`
	Role         string              `json:"role" example:"user"`
	IsActive     bool                `json:"is_active" example:"true"`
	DepartmentID *int                `json:"department_id,omitempty" example:"1"`
	Department   *DepartmentResponse `json:"department,omitempty"`
}

// NewUserResponse 將使用者模型轉為回應格式，含巢狀部門
func NewUserResponse(u *model.User) UserResponse {
	resp := UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         u.Role,
		IsActive:     u.IsActive,
		DepartmentID: u.DepartmentID,
	}
	if u.Department != nil {
		d := NewDepartmentResponse(u.Department)
		resp.Department = &d
	}
	return resp
}

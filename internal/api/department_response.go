package api

import "pc-management/internal/model"

// swagger:model api.DepartmentResponse
type DepartmentResponse struct {
	ID   int    `json:"id" example:"1"`
	Name string `json:"name" example:"IT"`
}

// NewDepartmentResponse 將部門模型轉為回應格式
func NewDepartmentResponse(d *model.Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID, Name: d.Name}
}

package api

// swagger:model api.CreateDepartmentRequest
type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required" example:"IT"`
}

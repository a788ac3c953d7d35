package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Username     string  `json:"username" validate:"required" example:"alice"`
	Email        string  `json:"email" validate:"required,email" example:"alice@example.com"`
	FullName     *string `json:"full_name,omitempty" example:"Alice Chen"`
	DepartmentID *int    `json:"department_id,omitempty" validate:"omitempty,gt=0" example:"1"`
}

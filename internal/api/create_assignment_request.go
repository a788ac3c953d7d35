package api

// swagger:model api.CreateAssignmentRequest
type CreateAssignmentRequest struct {
	UserID int `json:"user_id" validate:"required,gt=0" example:"1"`
	PCID   int `json:"pc_id" validate:"required,gt=0" example:"1"`
}

package api

// swagger:model api.CreatePCRequest
type CreatePCRequest struct {
	SerialNumber string `json:"serial_number" validate:"required" example:"SN-0001"`
	Model        string `json:"model" validate:"required" example:"Dell Latitude 5440"`
	// 省略時預設為 available
	Status string `json:"status,omitempty" example:"available"`
}

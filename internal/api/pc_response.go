package api

import "pc-management/internal/model"

// swagger:model api.PCResponse
type PCResponse struct {
	ID           int    `json:"id" example:"1"`
	SerialNumber string `json:"serial_number" example:"SN-0001"`
	Model        string `json:"model" example:"Dell Latitude 5440"`
	Status       string `json:"status" example:"available"`
}

// NewPCResponse 將 PC 模型轉為回應格式
func NewPCResponse(p *model.PC) PCResponse {
	return PCResponse{
		ID:           p.ID,
		SerialNumber: p.SerialNumber,
		Model:        p.Model,
		Status:       string(p.Status),
	}
}

package dto

import (
	"time"

	"monastery-guide/internal/models"
)

type CreateStatusCheckRequest struct {
	ClientName string `json:"client_name"`
}

type StatusCheckResponse struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Timestamp  string `json:"timestamp"`
}

func NewStatusCheckResponse(check *models.StatusCheck) StatusCheckResponse {
	return StatusCheckResponse{
		ID:         check.ID,
		ClientName: check.ClientName,
		Timestamp:  check.Timestamp.Format(time.RFC3339),
	}
}

package dto

import "github.com/google/uuid"

type IngestTextRequest struct {
	Text  string `json:"text" validate:"required"`
	Label string `json:"label"`
}

type IngestResponse struct {
	SessionId     uuid.UUID `json:"session_id"`
	SessionNumber int       `json:"session_number"`
	RecordCount   int       `json:"record_count"`
}

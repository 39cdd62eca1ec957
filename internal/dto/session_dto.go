package dto

import "github.com/google/uuid"

type DeleteSessionResponse struct {
	SessionNumber int `json:"session_number"`
}

// SessionEventMessage is the payload published on the session-events topic
// whenever a session is created or removed.
type SessionEventMessage struct {
	SessionId     uuid.UUID `json:"session_id"`
	SessionNumber int       `json:"session_number"`
	RecordCount   int       `json:"record_count,omitempty"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a single classified customer-feedback record. Text is never
// empty; the ingestion pipeline drops rows without usable text before a
// Feedback is ever built.
type Feedback struct {
	Id            uuid.UUID
	SessionId     uuid.UUID
	SessionNumber int
	Text          string
	Sentiment     Sentiment
	CustomerName  *string
	FeedbackDate  *time.Time
	ProductArea   *string
	CreatedAt     time.Time
}

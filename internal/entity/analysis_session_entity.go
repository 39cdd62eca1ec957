package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisSession groups the feedbacks of one ingestion batch.
// SessionNumber is the small user-facing identifier allocated gap-first.
type AnalysisSession struct {
	Id             uuid.UUID
	SessionNumber  int
	SourceFilename *string
	CreatedAt      time.Time
}

// SessionWithCounts carries the per-sentiment sub-counts computed in a single
// grouped query for the session list view.
type SessionWithCounts struct {
	AnalysisSession
	TotalFeedbacks    int64
	PositiveFeedbacks int64
	NegativeFeedbacks int64
	NeutralFeedbacks  int64
}

package dto

import (
	"github.com/google/uuid"

	"sentia-be/internal/entity"
)

// DashboardFilter narrows the dashboard and export queries. All fields are
// optional and combine with AND semantics.
type DashboardFilter struct {
	SessionId   *uuid.UUID
	Sentiment   *entity.Sentiment
	ProductArea string
}

func (f DashboardFilter) IsEmpty() bool {
	return f.SessionId == nil && f.Sentiment == nil && f.ProductArea == ""
}

type SentimentStats struct {
	Total           int64   `json:"total"`
	Positive        int64   `json:"positive"`
	Negative        int64   `json:"negative"`
	Neutral         int64   `json:"neutral"`
	Unknown         int64   `json:"unknown"`
	PositivePercent float64 `json:"positive_percent"`
	NegativePercent float64 `json:"negative_percent"`
	NeutralPercent  float64 `json:"neutral_percent"`
	UnknownPercent  float64 `json:"unknown_percent"`
}

type FeedbackItem struct {
	Id             uuid.UUID `json:"id"`
	Text           string    `json:"text"`
	Sentiment      string    `json:"sentiment"`
	SentimentLabel string    `json:"sentiment_label"`
	CustomerName   *string   `json:"customer_name"`
	FeedbackDate   *string   `json:"feedback_date"`
	ProductArea    *string   `json:"product_area"`
	SessionNumber  int       `json:"session_number"`
	CreatedAt      string    `json:"created_at"`
}

type SessionSummary struct {
	Id                uuid.UUID `json:"id"`
	SessionNumber     int       `json:"session_number"`
	SourceFilename    *string   `json:"source_filename"`
	CreatedAt         string    `json:"created_at"`
	TotalFeedbacks    int64     `json:"total_feedbacks"`
	PositiveFeedbacks int64     `json:"positive_feedbacks"`
	NegativeFeedbacks int64     `json:"negative_feedbacks"`
	NeutralFeedbacks  int64     `json:"neutral_feedbacks"`
}

type DashboardResponse struct {
	Stats        *SentimentStats   `json:"stats"`
	Feedbacks    []*FeedbackItem   `json:"feedbacks"`
	Sessions     []*SessionSummary `json:"sessions"`
	ProductAreas []string          `json:"product_areas"`
}

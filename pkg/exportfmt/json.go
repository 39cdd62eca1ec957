package exportfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sentia-be/internal/entity"
)

// ExportRecord is the JSON export shape: raw field values, numeric session
// identifier rather than the composed display label.
type ExportRecord struct {
	Id            uuid.UUID `json:"id"`
	Text          string    `json:"text"`
	Sentiment     string    `json:"sentiment"`
	CustomerName  *string   `json:"customer_name"`
	FeedbackDate  *string   `json:"feedback_date"`
	ProductArea   *string   `json:"product_area"`
	SessionNumber int       `json:"session_number"`
	AnalyzedAt    time.Time `json:"analyzed_at"`
}

// WriteJSON serializes records pretty-printed. HTML escaping is disabled so
// accented and other non-ASCII characters stay literal in the file.
func WriteJSON(records []*entity.Feedback) ([]byte, error) {
	out := make([]ExportRecord, 0, len(records))
	for _, record := range records {
		out = append(out, ExportRecord{
			Id:            record.Id,
			Text:          record.Text,
			Sentiment:     string(record.Sentiment),
			CustomerName:  record.CustomerName,
			FeedbackDate:  isoDate(record.FeedbackDate),
			ProductArea:   record.ProductArea,
			SessionNumber: record.SessionNumber,
			AnalyzedAt:    record.CreatedAt,
		})
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return nil, fmt.Errorf("encode export json: %w", err)
	}
	return buf.Bytes(), nil
}

func isoDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

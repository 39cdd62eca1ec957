package ingest

import (
	"strings"
	"time"
)

// Accepted key names for each canonical field, probed in order. The first
// present key wins, which keeps uploads from legacy exports working without a
// mapping step.
var (
	TextFieldNames     = []string{"feedback_text", "Feedback", "texto_feedback", "comentario"}
	CustomerFieldNames = []string{"customer_name", "Cliente"}
	DateFieldNames     = []string{"feedback_date", "Data"}
	AreaFieldNames     = []string{"product_area", "Area Produto"}
)

// dateLayouts are tried in order; the first successful parse wins. Anything
// unparseable degrades to an absent date rather than failing the batch.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"02/01/2006 15:04",
}

// Row is one uploaded record as a field-name to raw-value mapping, produced
// from a CSV data row or a JSON object.
type Row map[string]string

// Record is the canonical parsed form of one row. Optional fields are nil
// when missing or empty after trimming.
type Record struct {
	Text         string
	CustomerName *string
	FeedbackDate *time.Time
	ProductArea  *string
}

// ParseRow normalizes one row into a Record. It returns nil when the row has
// no usable feedback text, signalling the caller to drop the row.
func ParseRow(row Row) *Record {
	text := probe(row, TextFieldNames)
	if text == "" {
		return nil
	}

	return &Record{
		Text:         text,
		CustomerName: optional(probe(row, CustomerFieldNames)),
		FeedbackDate: parseDate(probe(row, DateFieldNames)),
		ProductArea:  optional(probe(row, AreaFieldNames)),
	}
}

// ValidateTextField checks that at least one accepted text key appears among
// the batch's keys. Without it the whole ingestion is rejected.
func ValidateTextField(rows []Row) error {
	for _, row := range rows {
		for _, name := range TextFieldNames {
			if _, ok := row[name]; ok {
				return nil
			}
		}
	}
	return ErrMissingTextField
}

func probe(row Row, names []string) string {
	for _, name := range names {
		if v, ok := row[name]; ok {
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func parseDate(v string) *time.Time {
	if v == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			// Only the calendar date matters; drop any time component.
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}

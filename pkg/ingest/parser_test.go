package ingest

import (
	"testing"
	"time"
)

func TestParseRowFieldAliases(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		wantText string
		wantNil  bool
	}{
		{
			name:     "canonical keys",
			row:      Row{"feedback_text": "ótimo"},
			wantText: "ótimo",
		},
		{
			name:     "legacy Feedback key",
			row:      Row{"Feedback": "funciona bem"},
			wantText: "funciona bem",
		},
		{
			name:     "portuguese key",
			row:      Row{"texto_feedback": "lento demais"},
			wantText: "lento demais",
		},
		{
			name:     "comentario key",
			row:      Row{"comentario": "sem opinião"},
			wantText: "sem opinião",
		},
		{
			name:     "first present key wins",
			row:      Row{"feedback_text": "primeiro", "comentario": "segundo"},
			wantText: "primeiro",
		},
		{
			name:    "no text key",
			row:     Row{"customer_name": "Maria"},
			wantNil: true,
		},
		{
			name:    "blank text",
			row:     Row{"feedback_text": "   "},
			wantNil: true,
		},
		{
			name:     "text is trimmed",
			row:      Row{"feedback_text": "  com espaços  "},
			wantText: "com espaços",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := ParseRow(tt.row)
			if tt.wantNil {
				if record != nil {
					t.Fatalf("ParseRow(%v) = %+v, want nil", tt.row, record)
				}
				return
			}
			if record == nil {
				t.Fatalf("ParseRow(%v) = nil, want text %q", tt.row, tt.wantText)
			}
			if record.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", record.Text, tt.wantText)
			}
		})
	}
}

func TestParseRowOptionalFields(t *testing.T) {
	record := ParseRow(Row{
		"feedback_text": "texto",
		"Cliente":       "João",
		"Data":          "15/03/2024",
		"Area Produto":  "Pagamentos",
	})
	if record == nil {
		t.Fatal("ParseRow returned nil")
	}
	if record.CustomerName == nil || *record.CustomerName != "João" {
		t.Errorf("CustomerName = %v, want João", record.CustomerName)
	}
	if record.ProductArea == nil || *record.ProductArea != "Pagamentos" {
		t.Errorf("ProductArea = %v, want Pagamentos", record.ProductArea)
	}
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if record.FeedbackDate == nil || !record.FeedbackDate.Equal(want) {
		t.Errorf("FeedbackDate = %v, want %v", record.FeedbackDate, want)
	}
}

func TestParseRowDateLayouts(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *time.Time
	}{
		{name: "iso date", value: "2024-01-15", want: datePtr(2024, 1, 15)},
		{name: "iso datetime drops time", value: "2024-01-15 10:30:00", want: datePtr(2024, 1, 15)},
		{name: "brazilian date", value: "15/01/2024", want: datePtr(2024, 1, 15)},
		{name: "brazilian datetime", value: "15/01/2024 10:30", want: datePtr(2024, 1, 15)},
		{name: "garbage degrades to nil", value: "ontem", want: nil},
		{name: "empty is nil", value: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := ParseRow(Row{"feedback_text": "x", "feedback_date": tt.value})
			if record == nil {
				t.Fatal("ParseRow returned nil")
			}
			switch {
			case tt.want == nil && record.FeedbackDate != nil:
				t.Errorf("FeedbackDate = %v, want nil", record.FeedbackDate)
			case tt.want != nil && (record.FeedbackDate == nil || !record.FeedbackDate.Equal(*tt.want)):
				t.Errorf("FeedbackDate = %v, want %v", record.FeedbackDate, tt.want)
			}
		})
	}
}

func TestValidateTextField(t *testing.T) {
	if err := ValidateTextField([]Row{{"feedback_text": "ok"}}); err != nil {
		t.Errorf("ValidateTextField = %v, want nil", err)
	}
	// One row carrying the key is enough for the batch.
	if err := ValidateTextField([]Row{{"outro": "x"}, {"comentario": "ok"}}); err != nil {
		t.Errorf("ValidateTextField = %v, want nil", err)
	}
	if err := ValidateTextField([]Row{{"nome": "Maria"}}); err != ErrMissingTextField {
		t.Errorf("ValidateTextField = %v, want ErrMissingTextField", err)
	}
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

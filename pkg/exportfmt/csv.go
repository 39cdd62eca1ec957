package exportfmt

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"sentia-be/internal/entity"
)

const absentValue = "N/A"

var csvHeader = []string{
	"ID",
	"Texto do Feedback",
	"Sentimento",
	"Cliente",
	"Data do Feedback",
	"Área do Produto",
	"Sessão",
	"Data da Análise",
}

// WriteCSV serializes records (already ordered newest-first) with a UTF-8
// byte-order mark so spreadsheet tools pick up the accented characters.
func WriteCSV(records []*entity.Feedback) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Id.String(),
			record.Text,
			record.Sentiment.DisplayLabel(),
			orAbsent(record.CustomerName),
			formatDate(record.FeedbackDate),
			orAbsent(record.ProductArea),
			fmt.Sprintf("Sessão #%d", record.SessionNumber),
			record.CreatedAt.Format("02/01/2006 15:04"),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func orAbsent(v *string) string {
	if v == nil {
		return absentValue
	}
	return *v
}

func formatDate(t *time.Time) string {
	if t == nil {
		return absentValue
	}
	return t.Format("02/01/2006")
}

package classifier

import (
	"context"
	"testing"

	"sentia-be/internal/entity"
)

func TestKeywordClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want entity.Sentiment
	}{
		{name: "positive keyword", text: "Produto ótimo, chegou rápido", want: entity.SentimentPositive},
		{name: "positive uppercase", text: "EXCELENTE atendimento", want: entity.SentimentPositive},
		{name: "unaccented variant", text: "otimo custo benefício", want: entity.SentimentPositive},
		{name: "negative keyword", text: "Muito lento para carregar", want: entity.SentimentNegative},
		{name: "negative phrase", text: "não gostei do novo layout", want: entity.SentimentNegative},
		{name: "no keyword is neutral", text: "Chegou na data prevista", want: entity.SentimentNeutral},
		{name: "positive wins over negative", text: "Produto excelente apesar do problema na entrega", want: entity.SentimentPositive},
		{name: "empty-ish text", text: "...", want: entity.SentimentNeutral},
	}

	c := NewKeywordClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(context.Background(), tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

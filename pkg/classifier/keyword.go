package classifier

import (
	"context"
	"strings"

	"sentia-be/internal/constant"
	"sentia-be/internal/entity"
)

// KeywordClassifier is the local strategy: lower-cased containment against
// fixed word lists. Positive is checked first and short-circuits, even when a
// negative keyword also appears.
type KeywordClassifier struct{}

var _ Classifier = &KeywordClassifier{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

func (k *KeywordClassifier) Classify(_ context.Context, text string) entity.Sentiment {
	lowered := strings.ToLower(text)

	for _, word := range constant.PositiveKeywords {
		if strings.Contains(lowered, word) {
			return entity.SentimentPositive
		}
	}
	for _, word := range constant.NegativeKeywords {
		if strings.Contains(lowered, word) {
			return entity.SentimentNegative
		}
	}
	return entity.SentimentNeutral
}

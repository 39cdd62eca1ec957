package classifier

import (
	"context"
	"fmt"

	"sentia-be/internal/constant"
	"sentia-be/internal/entity"
	"sentia-be/internal/pkg/logger"
	"sentia-be/pkg/llm"
)

// Classifier assigns a sentiment to a non-empty feedback text.
// Implementations never return an error: every failure path resolves to
// entity.SentimentUnknown so a bad row cannot abort an ingestion batch.
type Classifier interface {
	Classify(ctx context.Context, text string) entity.Sentiment
}

// NewClassifier selects the strategy by configuration. The LLM provider may be
// nil for the keyword strategy.
func NewClassifier(strategy string, provider llm.LLMProvider, temperature float64, sysLogger logger.ILogger) (Classifier, error) {
	switch strategy {
	case constant.ClassifierStrategyKeyword:
		return NewKeywordClassifier(), nil
	case constant.ClassifierStrategyLLM:
		if provider == nil {
			return nil, fmt.Errorf("llm classifier strategy requires a configured provider")
		}
		return NewLLMClassifier(provider, temperature, sysLogger), nil
	default:
		return nil, fmt.Errorf("unsupported classifier strategy: %s", strategy)
	}
}

package classifier

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"sentia-be/internal/constant"
	"sentia-be/internal/entity"
	"sentia-be/internal/pkg/logger"
	"sentia-be/pkg/llm"
)

// LLMClassifier delegates to a remote text-generation provider. The model is
// asked for one of three Portuguese sentiment words; matching is substring
// containment on the lower-cased response because the model may wrap its
// verdict in reasoning text. Transport failures and unrecognized responses
// degrade to UNKNOWN and are logged, never propagated.
type LLMClassifier struct {
	provider    llm.LLMProvider
	temperature float64
	sysLogger   logger.ILogger
}

var _ Classifier = &LLMClassifier{}

func NewLLMClassifier(provider llm.LLMProvider, temperature float64, sysLogger logger.ILogger) *LLMClassifier {
	if temperature <= 0 {
		temperature = 0.2
	}
	return &LLMClassifier{
		provider:    provider,
		temperature: temperature,
		sysLogger:   sysLogger,
	}
}

func (c *LLMClassifier) Classify(ctx context.Context, text string) entity.Sentiment {
	prompt := fmt.Sprintf(constant.SentimentPromptTemplate, text)

	response, err := c.provider.Generate(ctx, prompt, llm.WithTemperature(c.temperature))
	if err != nil {
		c.logFailure("llm call failed", err, text)
		return entity.SentimentUnknown
	}

	lowered := strings.ToLower(strings.TrimSpace(response))

	switch {
	case strings.Contains(lowered, constant.SentimentWordPositive):
		return entity.SentimentPositive
	case strings.Contains(lowered, constant.SentimentWordNegative):
		return entity.SentimentNegative
	case strings.Contains(lowered, constant.SentimentWordNeutral):
		return entity.SentimentNeutral
	default:
		c.logFailure("no sentiment keyword in llm response", nil, text)
		return entity.SentimentUnknown
	}
}

func (c *LLMClassifier) logFailure(message string, err error, text string) {
	if c.sysLogger == nil {
		return
	}
	details := map[string]interface{}{
		"text_preview": preview(text),
	}
	if err != nil {
		details["error"] = err.Error()
	}
	c.sysLogger.Warn("classifier", message, details)
}

// preview truncates for log output, backing up to a rune boundary so accented
// text is never cut mid-sequence.
func preview(text string) string {
	const max = 50
	if len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}

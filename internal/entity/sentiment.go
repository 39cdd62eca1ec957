package entity

// Sentiment classifies the tone of a feedback text. It is stored as a short
// code and rendered with its Portuguese display label.
type Sentiment string

const (
	SentimentPositive Sentiment = "POS"
	SentimentNegative Sentiment = "NEG"
	SentimentNeutral  Sentiment = "NEU"
	SentimentUnknown  Sentiment = "UNKN"
)

// AllSentiments returns every valid sentiment, in display order.
func AllSentiments() []Sentiment {
	return []Sentiment{SentimentPositive, SentimentNegative, SentimentNeutral, SentimentUnknown}
}

func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral, SentimentUnknown:
		return true
	}
	return false
}

// DisplayLabel returns the user-facing label for the sentiment.
func (s Sentiment) DisplayLabel() string {
	switch s {
	case SentimentPositive:
		return "Positivo"
	case SentimentNegative:
		return "Negativo"
	case SentimentNeutral:
		return "Neutro"
	default:
		return "Desconhecido"
	}
}

// ParseSentiment maps a stored code to a Sentiment. The second return value
// reports whether the code is one of the four known values.
func ParseSentiment(code string) (Sentiment, bool) {
	s := Sentiment(code)
	if s.IsValid() {
		return s, true
	}
	return SentimentUnknown, false
}

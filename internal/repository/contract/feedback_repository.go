package contract

import (
	"context"

	"github.com/google/uuid"

	"sentia-be/internal/entity"
	"sentia-be/internal/repository/specification"
)

type FeedbackRepository interface {
	// BulkCreate persists one ingestion batch in a single insert.
	BulkCreate(ctx context.Context, feedbacks []*entity.Feedback) error
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// CountBySentiment returns counts grouped by sentiment under the given
	// filters. Sentiments with no rows are present with a zero count.
	CountBySentiment(ctx context.Context, specs ...specification.Specification) (map[entity.Sentiment]int64, error)

	// DistinctProductAreas lists the distinct non-null product areas, for
	// filter population.
	DistinctProductAreas(ctx context.Context) ([]string, error)
}

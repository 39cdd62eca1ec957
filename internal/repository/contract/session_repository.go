package contract

import (
	"context"

	"github.com/google/uuid"

	"sentia-be/internal/entity"
	"sentia-be/internal/repository/specification"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.AnalysisSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnalysisSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// ListNumbers returns every allocated session number in ascending order,
	// feeding the gap-first allocator.
	ListNumbers(ctx context.Context) ([]int, error)

	// FindAllWithCounts returns all sessions with per-sentiment sub-counts
	// computed in a single grouped query, newest first.
	FindAllWithCounts(ctx context.Context) ([]*entity.SessionWithCounts, error)
}

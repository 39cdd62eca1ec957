package unitofwork

import (
	"context"

	"sentia-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SessionRepository() contract.SessionRepository
	FeedbackRepository() contract.FeedbackRepository
}

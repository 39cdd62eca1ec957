package service

import (
	"context"

	"sentia-be/internal/dto"
	"sentia-be/internal/entity"
	"sentia-be/internal/repository/specification"
	"sentia-be/internal/repository/unitofwork"
	"sentia-be/pkg/exportfmt"
)

type IExportService interface {
	ExportCSV(ctx context.Context, filter dto.DashboardFilter) ([]byte, error)
	ExportJSON(ctx context.Context, filter dto.DashboardFilter) ([]byte, error)
}

type exportService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewExportService(uowFactory unitofwork.RepositoryFactory) IExportService {
	return &exportService{
		uowFactory: uowFactory,
	}
}

func (s *exportService) ExportCSV(ctx context.Context, filter dto.DashboardFilter) ([]byte, error) {
	records, err := s.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	return exportfmt.WriteCSV(records)
}

func (s *exportService) ExportJSON(ctx context.Context, filter dto.DashboardFilter) ([]byte, error) {
	records, err := s.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	return exportfmt.WriteJSON(records)
}

// Exports honor the same filters as the dashboard so the downloaded file
// matches what the user is looking at.
func (s *exportService) fetch(ctx context.Context, filter dto.DashboardFilter) ([]*entity.Feedback, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := append(feedbackSpecs(filter), specification.OrderBy{Field: "feedbacks.created_at", Desc: true})
	return uow.FeedbackRepository().FindAll(ctx, specs...)
}

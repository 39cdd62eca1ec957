package service

import (
	"context"
	"math"
	"time"

	"sentia-be/internal/dto"
	"sentia-be/internal/entity"
	"sentia-be/internal/repository/memory"
	"sentia-be/internal/repository/specification"
	"sentia-be/internal/repository/unitofwork"
)

type IDashboardService interface {
	GetDashboard(ctx context.Context, filter dto.DashboardFilter) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	statsCache *memory.StatsRepository
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, statsCache *memory.StatsRepository) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
		statsCache: statsCache,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, filter dto.DashboardFilter) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := feedbackSpecs(filter)

	stats, err := s.getStats(ctx, uow, filter, specs)
	if err != nil {
		return nil, err
	}

	listSpecs := append(specs, specification.OrderBy{Field: "feedbacks.created_at", Desc: true})
	feedbacks, err := uow.FeedbackRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	sessions, err := uow.SessionRepository().FindAllWithCounts(ctx)
	if err != nil {
		return nil, err
	}

	productAreas, err := uow.FeedbackRepository().DistinctProductAreas(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.FeedbackItem, 0, len(feedbacks))
	for _, f := range feedbacks {
		items = append(items, toFeedbackItem(f))
	}
	summaries := make([]*dto.SessionSummary, 0, len(sessions))
	for _, sess := range sessions {
		summaries = append(summaries, toSessionSummary(sess))
	}

	return &dto.DashboardResponse{
		Stats:        stats,
		Feedbacks:    items,
		Sessions:     summaries,
		ProductAreas: productAreas,
	}, nil
}

// getStats serves the unfiltered stats from cache when possible; filtered
// variants are cheap enough to always compute.
func (s *dashboardService) getStats(ctx context.Context, uow unitofwork.UnitOfWork, filter dto.DashboardFilter, specs []specification.Specification) (*dto.SentimentStats, error) {
	if filter.IsEmpty() {
		if cached, found := s.statsCache.Get(); found {
			return cached, nil
		}
	}

	counts, err := uow.FeedbackRepository().CountBySentiment(ctx, specs...)
	if err != nil {
		return nil, err
	}
	stats := buildStats(counts)

	if filter.IsEmpty() {
		s.statsCache.Save(stats)
	}
	return stats, nil
}

func feedbackSpecs(filter dto.DashboardFilter) []specification.Specification {
	var specs []specification.Specification
	if filter.SessionId != nil {
		specs = append(specs, specification.BySessionID{SessionID: *filter.SessionId})
	}
	if filter.Sentiment != nil {
		specs = append(specs, specification.BySentiment{Sentiment: *filter.Sentiment})
	}
	if filter.ProductArea != "" {
		specs = append(specs, specification.ProductAreaContains{Term: filter.ProductArea})
	}
	return specs
}

func buildStats(counts map[entity.Sentiment]int64) *dto.SentimentStats {
	stats := &dto.SentimentStats{
		Positive: counts[entity.SentimentPositive],
		Negative: counts[entity.SentimentNegative],
		Neutral:  counts[entity.SentimentNeutral],
		Unknown:  counts[entity.SentimentUnknown],
	}
	stats.Total = stats.Positive + stats.Negative + stats.Neutral + stats.Unknown
	if stats.Total == 0 {
		return stats
	}
	stats.PositivePercent = percent(stats.Positive, stats.Total)
	stats.NegativePercent = percent(stats.Negative, stats.Total)
	stats.NeutralPercent = percent(stats.Neutral, stats.Total)
	stats.UnknownPercent = percent(stats.Unknown, stats.Total)
	return stats
}

// percent rounds to one decimal place.
func percent(part, total int64) float64 {
	return math.Round(float64(part)/float64(total)*1000) / 10
}

func toFeedbackItem(f *entity.Feedback) *dto.FeedbackItem {
	var feedbackDate *string
	if f.FeedbackDate != nil {
		d := f.FeedbackDate.Format("2006-01-02")
		feedbackDate = &d
	}
	return &dto.FeedbackItem{
		Id:             f.Id,
		Text:           f.Text,
		Sentiment:      string(f.Sentiment),
		SentimentLabel: f.Sentiment.DisplayLabel(),
		CustomerName:   f.CustomerName,
		FeedbackDate:   feedbackDate,
		ProductArea:    f.ProductArea,
		SessionNumber:  f.SessionNumber,
		CreatedAt:      f.CreatedAt.Format(time.RFC3339),
	}
}

func toSessionSummary(s *entity.SessionWithCounts) *dto.SessionSummary {
	return &dto.SessionSummary{
		Id:                s.Id,
		SessionNumber:     s.SessionNumber,
		SourceFilename:    s.SourceFilename,
		CreatedAt:         s.CreatedAt.Format(time.RFC3339),
		TotalFeedbacks:    s.TotalFeedbacks,
		PositiveFeedbacks: s.PositiveFeedbacks,
		NegativeFeedbacks: s.NegativeFeedbacks,
		NeutralFeedbacks:  s.NeutralFeedbacks,
	}
}

package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sentia-be/internal/entity"
	"sentia-be/internal/mapper"
	"sentia-be/internal/model"
	"sentia-be/internal/repository/contract"
	"sentia-be/internal/repository/specification"
)

type SessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnalysisSessionMapper
}

func NewSessionRepository(db *gorm.DB) contract.SessionRepository {
	return &SessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnalysisSessionMapper(),
	}
}

func (r *SessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SessionRepositoryImpl) Create(ctx context.Context, session *entity.AnalysisSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *SessionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.AnalysisSession{}, id).Error
}

func (r *SessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnalysisSession, error) {
	var m model.AnalysisSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AnalysisSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SessionRepositoryImpl) ListNumbers(ctx context.Context) ([]int, error) {
	var numbers []int
	err := r.db.WithContext(ctx).
		Model(&model.AnalysisSession{}).
		Order("session_number ASC").
		Pluck("session_number", &numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

type sessionCountsRow struct {
	model.AnalysisSession
	TotalFeedbacks    int64
	PositiveFeedbacks int64
	NegativeFeedbacks int64
	NeutralFeedbacks  int64
}

func (r *SessionRepositoryImpl) FindAllWithCounts(ctx context.Context) ([]*entity.SessionWithCounts, error) {
	var rows []sessionCountsRow

	err := r.db.WithContext(ctx).
		Model(&model.AnalysisSession{}).
		Select(`analysis_sessions.*,
			COUNT(feedbacks.id) AS total_feedbacks,
			COUNT(feedbacks.id) FILTER (WHERE feedbacks.sentiment = 'POS') AS positive_feedbacks,
			COUNT(feedbacks.id) FILTER (WHERE feedbacks.sentiment = 'NEG') AS negative_feedbacks,
			COUNT(feedbacks.id) FILTER (WHERE feedbacks.sentiment = 'NEU') AS neutral_feedbacks`).
		Joins("LEFT JOIN feedbacks ON feedbacks.session_id = analysis_sessions.id").
		Group("analysis_sessions.id").
		Order("analysis_sessions.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entity.SessionWithCounts, len(rows))
	for i, row := range rows {
		result[i] = &entity.SessionWithCounts{
			AnalysisSession:   *r.mapper.ToEntity(&row.AnalysisSession),
			TotalFeedbacks:    row.TotalFeedbacks,
			PositiveFeedbacks: row.PositiveFeedbacks,
			NegativeFeedbacks: row.NegativeFeedbacks,
			NeutralFeedbacks:  row.NeutralFeedbacks,
		}
	}
	return result, nil
}

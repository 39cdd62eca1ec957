package implementation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sentia-be/internal/entity"
	"sentia-be/internal/mapper"
	"sentia-be/internal/model"
	"sentia-be/internal/repository/contract"
	"sentia-be/internal/repository/specification"
)

type FeedbackRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeedbackMapper
}

func NewFeedbackRepository(db *gorm.DB) contract.FeedbackRepository {
	return &FeedbackRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeedbackMapper(),
	}
}

func (r *FeedbackRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FeedbackRepositoryImpl) BulkCreate(ctx context.Context, feedbacks []*entity.Feedback) error {
	if len(feedbacks) == 0 {
		return nil
	}
	models := r.mapper.ToModels(feedbacks)
	if err := r.db.WithContext(ctx).Omit("Session").Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		feedbacks[i].Id = m.Id
		feedbacks[i].CreatedAt = m.CreatedAt
	}
	return nil
}

func (r *FeedbackRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionId).Delete(&model.Feedback{}).Error
}

func (r *FeedbackRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error) {
	var models []*model.Feedback
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Session"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FeedbackRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Feedback{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *FeedbackRepositoryImpl) CountBySentiment(ctx context.Context, specs ...specification.Specification) (map[entity.Sentiment]int64, error) {
	var rows []struct {
		Sentiment string
		Count     int64
	}

	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Feedback{}), specs...)
	err := query.
		Select("feedbacks.sentiment AS sentiment, COUNT(*) AS count").
		Group("feedbacks.sentiment").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.Sentiment]int64, 4)
	for _, s := range entity.AllSentiments() {
		counts[s] = 0
	}
	for _, row := range rows {
		if s, ok := entity.ParseSentiment(row.Sentiment); ok {
			counts[s] = row.Count
		}
	}
	return counts, nil
}

func (r *FeedbackRepositoryImpl) DistinctProductAreas(ctx context.Context) ([]string, error) {
	var areas []string
	err := r.db.WithContext(ctx).
		Model(&model.Feedback{}).
		Where("product_area IS NOT NULL").
		Distinct().
		Order("product_area ASC").
		Pluck("product_area", &areas).Error
	if err != nil {
		return nil, err
	}
	return areas, nil
}

package mapper

import (
	"sentia-be/internal/entity"
	"sentia-be/internal/model"
)

type FeedbackMapper struct{}

func NewFeedbackMapper() *FeedbackMapper {
	return &FeedbackMapper{}
}

// ToEntity reads the session number from the preloaded Session association so
// list and export views never issue a per-record lookup.
func (m *FeedbackMapper) ToEntity(f *model.Feedback) *entity.Feedback {
	if f == nil {
		return nil
	}

	sentiment, ok := entity.ParseSentiment(f.Sentiment)
	if !ok {
		sentiment = entity.SentimentUnknown
	}

	return &entity.Feedback{
		Id:            f.Id,
		SessionId:     f.SessionId,
		SessionNumber: f.Session.SessionNumber,
		Text:          f.Text,
		Sentiment:     sentiment,
		CustomerName:  f.CustomerName,
		FeedbackDate:  f.FeedbackDate,
		ProductArea:   f.ProductArea,
		CreatedAt:     f.CreatedAt,
	}
}

func (m *FeedbackMapper) ToModel(f *entity.Feedback) *model.Feedback {
	if f == nil {
		return nil
	}

	return &model.Feedback{
		Id:           f.Id,
		SessionId:    f.SessionId,
		Text:         f.Text,
		Sentiment:    string(f.Sentiment),
		CustomerName: f.CustomerName,
		FeedbackDate: f.FeedbackDate,
		ProductArea:  f.ProductArea,
		CreatedAt:    f.CreatedAt,
	}
}

func (m *FeedbackMapper) ToEntities(feedbacks []*model.Feedback) []*entity.Feedback {
	entities := make([]*entity.Feedback, len(feedbacks))
	for i, f := range feedbacks {
		entities[i] = m.ToEntity(f)
	}
	return entities
}

func (m *FeedbackMapper) ToModels(feedbacks []*entity.Feedback) []*model.Feedback {
	models := make([]*model.Feedback, len(feedbacks))
	for i, f := range feedbacks {
		models[i] = m.ToModel(f)
	}
	return models
}

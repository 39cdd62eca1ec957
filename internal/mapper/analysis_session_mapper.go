package mapper

import (
	"sentia-be/internal/entity"
	"sentia-be/internal/model"
)

type AnalysisSessionMapper struct{}

func NewAnalysisSessionMapper() *AnalysisSessionMapper {
	return &AnalysisSessionMapper{}
}

func (m *AnalysisSessionMapper) ToEntity(s *model.AnalysisSession) *entity.AnalysisSession {
	if s == nil {
		return nil
	}

	return &entity.AnalysisSession{
		Id:             s.Id,
		SessionNumber:  s.SessionNumber,
		SourceFilename: s.SourceFilename,
		CreatedAt:      s.CreatedAt,
	}
}

func (m *AnalysisSessionMapper) ToModel(s *entity.AnalysisSession) *model.AnalysisSession {
	if s == nil {
		return nil
	}

	return &model.AnalysisSession{
		Id:             s.Id,
		SessionNumber:  s.SessionNumber,
		SourceFilename: s.SourceFilename,
		CreatedAt:      s.CreatedAt,
	}
}

func (m *AnalysisSessionMapper) ToEntities(sessions []*model.AnalysisSession) []*entity.AnalysisSession {
	entities := make([]*entity.AnalysisSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

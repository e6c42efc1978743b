package mapper

import (
	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/model"
)

type LearningMapper struct{}

func NewLearningMapper() *LearningMapper {
	return &LearningMapper{}
}

func (m *LearningMapper) ToEntity(l *model.LearningProgress) *entity.LearningProgress {
	if l == nil {
		return nil
	}

	return &entity.LearningProgress{
		Id:        l.Id,
		Topic:     l.Topic,
		Subtopic:  l.Subtopic,
		Progress:  l.Progress,
		Status:    l.Status,
		Notes:     l.Notes,
		StartedAt: l.StartedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func (m *LearningMapper) ToModel(l *entity.LearningProgress) *model.LearningProgress {
	if l == nil {
		return nil
	}

	return &model.LearningProgress{
		Id:        l.Id,
		Topic:     l.Topic,
		Subtopic:  l.Subtopic,
		Progress:  l.Progress,
		Status:    l.Status,
		Notes:     l.Notes,
		StartedAt: l.StartedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func (m *LearningMapper) ToEntities(items []*model.LearningProgress) []*entity.LearningProgress {
	entities := make([]*entity.LearningProgress, len(items))
	for i, l := range items {
		entities[i] = m.ToEntity(l)
	}
	return entities
}

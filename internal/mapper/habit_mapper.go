package mapper

import (
	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/model"
)

type HabitMapper struct{}

func NewHabitMapper() *HabitMapper {
	return &HabitMapper{}
}

func (m *HabitMapper) ToEntity(h *model.Habit) *entity.Habit {
	if h == nil {
		return nil
	}

	return &entity.Habit{
		Id:          h.Id,
		Name:        h.Name,
		Description: h.Description,
		Frequency:   h.Frequency,
		CreatedAt:   h.CreatedAt,
	}
}

func (m *HabitMapper) ToModel(h *entity.Habit) *model.Habit {
	if h == nil {
		return nil
	}

	return &model.Habit{
		Id:          h.Id,
		Name:        h.Name,
		Description: h.Description,
		Frequency:   h.Frequency,
		CreatedAt:   h.CreatedAt,
	}
}

func (m *HabitMapper) ToEntities(habits []*model.Habit) []*entity.Habit {
	entities := make([]*entity.Habit, len(habits))
	for i, h := range habits {
		entities[i] = m.ToEntity(h)
	}
	return entities
}

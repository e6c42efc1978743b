package mapper

import (
	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/model"
)

type GoalMapper struct{}

func NewGoalMapper() *GoalMapper {
	return &GoalMapper{}
}

func (m *GoalMapper) ToEntity(g *model.Goal) *entity.Goal {
	if g == nil {
		return nil
	}

	return &entity.Goal{
		Id:          g.Id,
		Title:       g.Title,
		Description: g.Description,
		TargetDate:  g.TargetDate,
		Status:      g.Status,
		CreatedAt:   g.CreatedAt,
	}
}

func (m *GoalMapper) ToModel(g *entity.Goal) *model.Goal {
	if g == nil {
		return nil
	}

	return &model.Goal{
		Id:          g.Id,
		Title:       g.Title,
		Description: g.Description,
		TargetDate:  g.TargetDate,
		Status:      g.Status,
		CreatedAt:   g.CreatedAt,
	}
}

func (m *GoalMapper) ToEntities(goals []*model.Goal) []*entity.Goal {
	entities := make([]*entity.Goal, len(goals))
	for i, g := range goals {
		entities[i] = m.ToEntity(g)
	}
	return entities
}

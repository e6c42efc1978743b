package mapper

import (
	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/model"
)

type DecisionMapper struct{}

func NewDecisionMapper() *DecisionMapper {
	return &DecisionMapper{}
}

func (m *DecisionMapper) ToEntity(d *model.Decision) *entity.Decision {
	if d == nil {
		return nil
	}

	return &entity.Decision{
		Id:        d.Id,
		Topic:     d.Topic,
		Context:   d.Context,
		Outcome:   d.Outcome,
		CreatedAt: d.CreatedAt,
	}
}

func (m *DecisionMapper) ToModel(d *entity.Decision) *model.Decision {
	if d == nil {
		return nil
	}

	return &model.Decision{
		Id:        d.Id,
		Topic:     d.Topic,
		Context:   d.Context,
		Outcome:   d.Outcome,
		CreatedAt: d.CreatedAt,
	}
}

func (m *DecisionMapper) ToEntities(decisions []*model.Decision) []*entity.Decision {
	entities := make([]*entity.Decision, len(decisions))
	for i, d := range decisions {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

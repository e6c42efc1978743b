package mapper

import (
	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/model"
)

type PlanMapper struct{}

func NewPlanMapper() *PlanMapper {
	return &PlanMapper{}
}

func (m *PlanMapper) ToEntity(p *model.ActionPlan) *entity.ActionPlan {
	if p == nil {
		return nil
	}

	return &entity.ActionPlan{
		Id:        p.Id,
		PlanDate:  p.PlanDate,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
	}
}

func (m *PlanMapper) ToModel(p *entity.ActionPlan) *model.ActionPlan {
	if p == nil {
		return nil
	}

	return &model.ActionPlan{
		Id:        p.Id,
		PlanDate:  p.PlanDate,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
	}
}

func (m *PlanMapper) ToEntities(plans []*model.ActionPlan) []*entity.ActionPlan {
	entities := make([]*entity.ActionPlan, len(plans))
	for i, p := range plans {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

package mapper

import (
	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/model"
)

type PreferenceMapper struct{}

func NewPreferenceMapper() *PreferenceMapper {
	return &PreferenceMapper{}
}

func (m *PreferenceMapper) ToEntity(p *model.Preference) *entity.Preference {
	if p == nil {
		return nil
	}

	return &entity.Preference{
		Id:        p.Id,
		Key:       p.Key,
		Value:     p.Value,
		Category:  p.Category,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *PreferenceMapper) ToModel(p *entity.Preference) *model.Preference {
	if p == nil {
		return nil
	}

	return &model.Preference{
		Id:        p.Id,
		Key:       p.Key,
		Value:     p.Value,
		Category:  p.Category,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *PreferenceMapper) ToEntities(prefs []*model.Preference) []*entity.Preference {
	entities := make([]*entity.Preference, len(prefs))
	for i, p := range prefs {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

package mapper

import (
	"encoding/json"

	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type MemoryMapper struct{}

func NewMemoryMapper() *MemoryMapper {
	return &MemoryMapper{}
}

func (m *MemoryMapper) ToEntity(item *model.MemoryItem) *entity.MemoryItem {
	if item == nil {
		return nil
	}

	metadata := map[string]string{}
	if len(item.Metadata) > 0 {
		// Ignore malformed metadata rather than fail the whole lookup.
		_ = json.Unmarshal(item.Metadata, &metadata)
	}

	return &entity.MemoryItem{
		Id:        item.Id,
		Category:  item.Category,
		Content:   item.Content,
		Metadata:  metadata,
		CreatedAt: item.CreatedAt,
	}
}

func (m *MemoryMapper) ToModel(item *entity.MemoryItem, embedding []float32) (*model.MemoryItem, error) {
	if item == nil {
		return nil, nil
	}

	metadata, err := json.Marshal(item.Metadata)
	if err != nil {
		return nil, err
	}

	return &model.MemoryItem{
		Id:        item.Id,
		Category:  item.Category,
		Content:   item.Content,
		Metadata:  metadata,
		Embedding: pgvector.NewVector(embedding),
		CreatedAt: item.CreatedAt,
	}, nil
}

func (m *MemoryMapper) ToEntities(items []*model.MemoryItem) []*entity.MemoryItem {
	entities := make([]*entity.MemoryItem, len(items))
	for i, item := range items {
		entities[i] = m.ToEntity(item)
	}
	return entities
}

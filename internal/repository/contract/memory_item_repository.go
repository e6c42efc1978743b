package contract

import (
	"context"

	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/repository/specification"
)

type MemoryItemRepository interface {
	Create(ctx context.Context, item *entity.MemoryItem, embedding []float32) error
	Delete(ctx context.Context, id string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MemoryItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MemoryItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilar returns the closest items of one category by cosine
	// distance, nearest first.
	SearchSimilar(ctx context.Context, category string, embedding []float32, limit int) ([]*entity.MemoryMatch, error)
}

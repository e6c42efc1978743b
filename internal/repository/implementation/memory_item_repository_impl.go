package implementation

import (
	"context"
	"errors"

	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/mapper"
	"personal-assistant-be/internal/model"
	"personal-assistant-be/internal/repository/contract"
	"personal-assistant-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type MemoryItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MemoryMapper
}

func NewMemoryItemRepository(db *gorm.DB) contract.MemoryItemRepository {
	return &MemoryItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewMemoryMapper(),
	}
}

func (r *MemoryItemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MemoryItemRepositoryImpl) Create(ctx context.Context, item *entity.MemoryItem, embedding []float32) error {
	m, err := r.mapper.ToModel(item, embedding)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *MemoryItemRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.MemoryItem{}, "id = ?", id).Error
}

func (r *MemoryItemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MemoryItem, error) {
	var m model.MemoryItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MemoryItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MemoryItem, error) {
	var models []*model.MemoryItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MemoryItemRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.MemoryItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MemoryItemRepositoryImpl) SearchSimilar(ctx context.Context, category string, embedding []float32, limit int) ([]*entity.MemoryMatch, error) {
	if limit <= 0 {
		limit = 3
	}

	// Cosine distance via pgvector: embedding <=> query, lower is closer.
	type result struct {
		model.MemoryItem
		Distance float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("memory_items").
		Select("memory_items.*, embedding <=> ? as distance", queryVector).
		Where("category = ?", category).
		Order("distance ASC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	matches := make([]*entity.MemoryMatch, len(results))
	for i, res := range results {
		matches[i] = &entity.MemoryMatch{
			Item:     r.mapper.ToEntity(&res.MemoryItem),
			Distance: res.Distance,
		}
	}
	return matches, nil
}

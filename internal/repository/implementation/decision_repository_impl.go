package implementation

import (
	"context"
	"errors"

	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/mapper"
	"personal-assistant-be/internal/model"
	"personal-assistant-be/internal/repository/contract"
	"personal-assistant-be/internal/repository/specification"

	"gorm.io/gorm"
)

type DecisionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DecisionMapper
}

func NewDecisionRepository(db *gorm.DB) contract.DecisionRepository {
	return &DecisionRepositoryImpl{
		db:     db,
		mapper: mapper.NewDecisionMapper(),
	}
}

func (r *DecisionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DecisionRepositoryImpl) Create(ctx context.Context, decision *entity.Decision) error {
	m := r.mapper.ToModel(decision)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*decision = *r.mapper.ToEntity(m)
	return nil
}

func (r *DecisionRepositoryImpl) Update(ctx context.Context, decision *entity.Decision) error {
	m := r.mapper.ToModel(decision)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*decision = *r.mapper.ToEntity(m)
	return nil
}

func (r *DecisionRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Decision{}, id).Error
}

func (r *DecisionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Decision, error) {
	var m model.Decision
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DecisionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Decision, error) {
	var models []*model.Decision
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DecisionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Decision{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

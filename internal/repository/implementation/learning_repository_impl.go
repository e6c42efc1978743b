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

type LearningRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LearningMapper
}

func NewLearningRepository(db *gorm.DB) contract.LearningRepository {
	return &LearningRepositoryImpl{
		db:     db,
		mapper: mapper.NewLearningMapper(),
	}
}

func (r *LearningRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LearningRepositoryImpl) Create(ctx context.Context, progress *entity.LearningProgress) error {
	m := r.mapper.ToModel(progress)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*progress = *r.mapper.ToEntity(m)
	return nil
}

func (r *LearningRepositoryImpl) Update(ctx context.Context, progress *entity.LearningProgress) error {
	m := r.mapper.ToModel(progress)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*progress = *r.mapper.ToEntity(m)
	return nil
}

func (r *LearningRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.LearningProgress{}, id).Error
}

func (r *LearningRepositoryImpl) FindByTopic(ctx context.Context, topic string) ([]*entity.LearningProgress, error) {
	var models []*model.LearningProgress
	err := r.db.WithContext(ctx).
		Where("LOWER(topic) = LOWER(?)", topic).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *LearningRepositoryImpl) FindBySubtopic(ctx context.Context, topic, subtopic string) (*entity.LearningProgress, error) {
	var m model.LearningProgress
	err := r.db.WithContext(ctx).
		Where("LOWER(topic) = LOWER(?) AND LOWER(subtopic) = LOWER(?)", topic, subtopic).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LearningRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LearningProgress, error) {
	var m model.LearningProgress
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LearningRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningProgress, error) {
	var models []*model.LearningProgress
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *LearningRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.LearningProgress{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

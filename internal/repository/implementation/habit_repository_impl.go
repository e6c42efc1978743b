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

type HabitRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HabitMapper
}

func NewHabitRepository(db *gorm.DB) contract.HabitRepository {
	return &HabitRepositoryImpl{
		db:     db,
		mapper: mapper.NewHabitMapper(),
	}
}

func (r *HabitRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *HabitRepositoryImpl) Create(ctx context.Context, habit *entity.Habit) error {
	m := r.mapper.ToModel(habit)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*habit = *r.mapper.ToEntity(m)
	return nil
}

func (r *HabitRepositoryImpl) Update(ctx context.Context, habit *entity.Habit) error {
	m := r.mapper.ToModel(habit)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*habit = *r.mapper.ToEntity(m)
	return nil
}

func (r *HabitRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Habit{}, id).Error
}

func (r *HabitRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Habit, error) {
	var m model.Habit
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *HabitRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Habit, error) {
	var models []*model.Habit
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *HabitRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Habit{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

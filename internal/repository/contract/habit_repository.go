package contract

import (
	"context"

	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/repository/specification"
)

type HabitRepository interface {
	Create(ctx context.Context, habit *entity.Habit) error
	Update(ctx context.Context, habit *entity.Habit) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Habit, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Habit, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

package contract

import (
	"context"

	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/repository/specification"
)

type GoalRepository interface {
	Create(ctx context.Context, goal *entity.Goal) error
	Update(ctx context.Context, goal *entity.Goal) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Goal, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Goal, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

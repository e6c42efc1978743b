package contract

import (
	"context"

	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/repository/specification"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *entity.ActionPlan) error
	FindByDate(ctx context.Context, planDate string) (*entity.ActionPlan, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ActionPlan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActionPlan, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

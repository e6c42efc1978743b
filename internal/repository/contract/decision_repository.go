package contract

import (
	"context"

	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/repository/specification"
)

type DecisionRepository interface {
	Create(ctx context.Context, decision *entity.Decision) error
	Update(ctx context.Context, decision *entity.Decision) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Decision, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Decision, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

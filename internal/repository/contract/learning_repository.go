package contract

import (
	"context"

	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/repository/specification"
)

type LearningRepository interface {
	Create(ctx context.Context, progress *entity.LearningProgress) error
	Update(ctx context.Context, progress *entity.LearningProgress) error
	Delete(ctx context.Context, id int64) error
	FindByTopic(ctx context.Context, topic string) ([]*entity.LearningProgress, error)
	FindBySubtopic(ctx context.Context, topic, subtopic string) (*entity.LearningProgress, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LearningProgress, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningProgress, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

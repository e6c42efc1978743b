package contract

import (
	"context"

	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/repository/specification"
)

type PreferenceRepository interface {
	// Upsert inserts the preference or replaces the value when the key exists.
	Upsert(ctx context.Context, pref *entity.Preference) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Preference, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Preference, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

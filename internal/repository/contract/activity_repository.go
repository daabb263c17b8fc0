package contract

import (
	"context"

	"wisenotes-be/internal/entity"
	"wisenotes-be/internal/repository/specification"
)

type ActivityRepository interface {
	Create(ctx context.Context, entry *entity.ActivityEntry) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

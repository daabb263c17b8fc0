package contract

import (
	"context"

	"wisenotes-be/internal/entity"
	"wisenotes-be/internal/repository/specification"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uint) error
	DeleteByNotebookID(ctx context.Context, notebookID uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountByNotebookIDs(ctx context.Context, notebookIDs []uint) (map[uint]int64, error)
}

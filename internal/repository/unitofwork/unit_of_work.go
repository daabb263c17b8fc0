package unitofwork

import (
	"context"

	"wisenotes-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NotebookRepository() contract.NotebookRepository
	NoteRepository() contract.NoteRepository
	ActivityRepository() contract.ActivityRepository
}

package service

import (
	"context"
	"sort"
	"sync"

	"wisenotes-be/internal/entity"
	"wisenotes-be/internal/repository/contract"
	"wisenotes-be/internal/repository/specification"
	"wisenotes-be/internal/repository/unitofwork"
)

// In-memory store shared by the fake repositories. The fakes interpret
// the same specification values the gorm implementations translate to
// SQL, so the services under test run their real query plans.
type fakeStore struct {
	mu sync.Mutex

	notebooks      map[uint]*entity.Notebook
	notes          map[uint]*entity.Note
	activities     []*entity.ActivityEntry
	nextNotebookId uint
	nextNoteId     uint

	notebookWrites int
	noteWrites     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		notebooks:      make(map[uint]*entity.Notebook),
		notes:          make(map[uint]*entity.Note),
		nextNotebookId: 1,
		nextNoteId:     1,
	}
}

type fakeUowFactory struct {
	store *fakeStore
}

func newFakeUowFactory(store *fakeStore) unitofwork.RepositoryFactory {
	return &fakeUowFactory{store: store}
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) NotebookRepository() contract.NotebookRepository {
	return &fakeNotebookRepo{store: u.store}
}

func (u *fakeUow) NoteRepository() contract.NoteRepository {
	return &fakeNoteRepo{store: u.store}
}

func (u *fakeUow) ActivityRepository() contract.ActivityRepository {
	return &fakeActivityRepo{store: u.store}
}

// Notebook repository fake

type fakeNotebookRepo struct {
	store *fakeStore
}

func (r *fakeNotebookRepo) matches(n *entity.Notebook, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if n.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.OwnedBy:
			if n.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func (r *fakeNotebookRepo) Create(ctx context.Context, notebook *entity.Notebook) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	notebook.Id = r.store.nextNotebookId
	r.store.nextNotebookId++
	clone := *notebook
	r.store.notebooks[notebook.Id] = &clone
	return nil
}

func (r *fakeNotebookRepo) Update(ctx context.Context, notebook *entity.Notebook) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *notebook
	r.store.notebooks[notebook.Id] = &clone
	r.store.notebookWrites++
	return nil
}

func (r *fakeNotebookRepo) Delete(ctx context.Context, id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.notebooks, id)
	return nil
}

func (r *fakeNotebookRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Notebook, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeNotebookRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notebook, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var result []*entity.Notebook
	for _, n := range r.store.notebooks {
		if r.matches(n, specs) {
			clone := *n
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}

func (r *fakeNotebookRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

// Note repository fake

type fakeNoteRepo struct {
	store *fakeStore
}

func (r *fakeNoteRepo) matches(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByNoteID:
			if n.Id != s.ID {
				return false
			}
		case specification.ByNotebookID:
			if n.NotebookId != s.NotebookID {
				return false
			}
		case specification.InNotebookOwnedBy:
			if n.NotebookId != s.NotebookID {
				return false
			}
			parent, ok := r.store.notebooks[n.NotebookId]
			if !ok || parent.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	note.Id = r.store.nextNoteId
	r.store.nextNoteId++
	clone := *note
	r.store.notes[note.Id] = &clone
	return nil
}

func (r *fakeNoteRepo) Update(ctx context.Context, note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *note
	r.store.notes[note.Id] = &clone
	r.store.noteWrites++
	return nil
}

func (r *fakeNoteRepo) Delete(ctx context.Context, id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.notes, id)
	return nil
}

func (r *fakeNoteRepo) DeleteByNotebookID(ctx context.Context, notebookID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, n := range r.store.notes {
		if n.NotebookId == notebookID {
			delete(r.store.notes, id)
		}
	}
	return nil
}

func (r *fakeNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var result []*entity.Note
	for _, n := range r.store.notes {
		if r.matches(n, specs) {
			clone := *n
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}

func (r *fakeNoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func (r *fakeNoteRepo) CountByNotebookIDs(ctx context.Context, notebookIDs []uint) (map[uint]int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	counts := make(map[uint]int64, len(notebookIDs))
	for _, id := range notebookIDs {
		for _, n := range r.store.notes {
			if n.NotebookId == id {
				counts[id]++
			}
		}
	}
	return counts, nil
}

// Activity repository fake

type fakeActivityRepo struct {
	store *fakeStore
}

func (r *fakeActivityRepo) Create(ctx context.Context, entry *entity.ActivityEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entry.Id = uint(len(r.store.activities) + 1)
	clone := *entry
	r.store.activities = append(r.store.activities, &clone)
	return nil
}

func (r *fakeActivityRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]*entity.ActivityEntry, len(r.store.activities))
	copy(result, r.store.activities)
	return result, nil
}

func (r *fakeActivityRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return int64(len(r.store.activities)), nil
}

// Collaborator stubs

type capturingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *capturingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.payloads)
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

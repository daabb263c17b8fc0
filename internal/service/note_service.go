package service

import (
	"context"
	"encoding/json"
	"time"

	"wisenotes-be/internal/dto"
	"wisenotes-be/internal/entity"
	"wisenotes-be/internal/pkg/apperr"
	"wisenotes-be/internal/pkg/logger"
	"wisenotes-be/internal/repository/specification"
	"wisenotes-be/internal/repository/unitofwork"
	"wisenotes-be/internal/validation"
	"wisenotes-be/pkg/events"
	pktNats "wisenotes-be/pkg/nats"

	"github.com/google/uuid"
)

type INoteService interface {
	GetAll(ctx context.Context, userId string, notebookId uint) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, userId string, notebookId, id uint) (*dto.NoteResponse, error)
	Create(ctx context.Context, userId string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId string, notebookId, id uint) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	policy           *validation.Policy
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	log              logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	policy *validation.Policy,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		policy:           policy,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

func (c *noteService) GetAll(ctx context.Context, userId string, notebookId uint) ([]*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	// The ownership join yields no rows for a foreign or missing
	// notebook, so an empty list is the answer either way.
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.InNotebookOwnedBy{NotebookID: notebookId, UserID: userId},
		specification.OrderBy{Field: "notes.id"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		result = append(result, &dto.NoteResponse{
			Id:      note.Id,
			Content: note.Content,
		})
	}

	return result, nil
}

func (c *noteService) Show(ctx context.Context, userId string, notebookId, id uint) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByNoteID{ID: id},
		specification.InNotebookOwnedBy{NotebookID: notebookId, UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperr.ErrNotFound
	}

	return &dto.NoteResponse{
		Id:      note.Id,
		Content: note.Content,
	}, nil
}

func (c *noteService) Create(ctx context.Context, userId string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if err := c.policy.ValidateContent(req.Content); err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	// Ownership check and insert must see the same notebook state.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: req.NotebookId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		// The input was valid; the target notebook is what the caller
		// may not use. Distinct from BadRequest on purpose.
		return nil, apperr.ErrForbidden
	}

	note := entity.Note{
		Content:    req.Content,
		NotebookId: req.NotebookId,
		CreatedAt:  time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.publishActivity(ctx, "NOTE_CREATED", userId, map[string]interface{}{
		"note_id":     note.Id,
		"notebook_id": note.NotebookId,
	})
	c.publishExternal(ctx, "NOTE_CREATED", map[string]interface{}{
		"note_id":     note.Id,
		"notebook_id": note.NotebookId,
		"user_id":     userId,
	})

	return &dto.NoteResponse{
		Id:      note.Id,
		Content: note.Content,
	}, nil
}

func (c *noteService) Update(ctx context.Context, userId string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if err := c.policy.ValidateContent(req.Content); err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByNoteID{ID: req.Id},
		specification.InNotebookOwnedBy{NotebookID: req.NotebookId, UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperr.ErrNotFound
	}

	if note.Content != req.Content {
		now := time.Now()
		note.Content = req.Content
		note.UpdatedAt = &now

		if err := uow.NoteRepository().Update(ctx, note); err != nil {
			return nil, err
		}

		c.publishActivity(ctx, "NOTE_UPDATED", userId, map[string]interface{}{
			"note_id":     note.Id,
			"notebook_id": note.NotebookId,
		})
	}

	return &dto.NoteResponse{
		Id:      note.Id,
		Content: note.Content,
	}, nil
}

func (c *noteService) Delete(ctx context.Context, userId string, notebookId, id uint) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByNoteID{ID: id},
		specification.InNotebookOwnedBy{NotebookID: notebookId, UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return apperr.ErrNotFound
	}

	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return err
	}

	c.publishActivity(ctx, "NOTE_DELETED", userId, map[string]interface{}{
		"note_id":     id,
		"notebook_id": notebookId,
	})

	return nil
}

func (c *noteService) publishActivity(ctx context.Context, action, userId string, data map[string]interface{}) {
	msg := dto.ActivityMessage{
		EventId: uuid.NewString(),
		Action:  action,
		UserId:  userId,
		Data:    data,
	}

	msgJson, err := json.Marshal(msg)
	if err != nil {
		c.log.Warn("note-service", "failed to marshal activity message", map[string]interface{}{
			"error":  err.Error(),
			"action": action,
		})
		return
	}

	if err := c.publisherService.Publish(ctx, msgJson); err != nil {
		c.log.Warn("note-service", "failed to publish activity message", map[string]interface{}{
			"error":  err.Error(),
			"action": action,
		})
	}
}

func (c *noteService) publishExternal(ctx context.Context, eventType string, data map[string]interface{}) {
	if c.eventPublisher == nil {
		return
	}

	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := c.eventPublisher.Publish(ctx, evt); err != nil {
		c.log.Warn("note-service", "failed to publish external event", map[string]interface{}{
			"error": err.Error(),
			"type":  eventType,
		})
	}
}

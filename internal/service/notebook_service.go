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

type INotebookService interface {
	GetAll(ctx context.Context, userId string) ([]*dto.NotebookResponse, error)
	Show(ctx context.Context, userId string, id uint) (*dto.NotebookResponse, error)
	Create(ctx context.Context, userId string, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error)
	Update(ctx context.Context, userId string, req *dto.UpdateNotebookRequest) error
	Delete(ctx context.Context, userId string, id uint) error
}

type notebookService struct {
	uowFactory       unitofwork.RepositoryFactory
	policy           *validation.Policy
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	log              logger.ILogger
}

func NewNotebookService(
	uowFactory unitofwork.RepositoryFactory,
	policy *validation.Policy,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) INotebookService {
	return &notebookService{
		uowFactory:       uowFactory,
		policy:           policy,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

func (c *notebookService) GetAll(ctx context.Context, userId string) ([]*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(notebooks))
	for _, notebook := range notebooks {
		ids = append(ids, notebook.Id)
	}

	counts, err := uow.NoteRepository().CountByNotebookIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NotebookResponse, 0, len(notebooks))
	for _, notebook := range notebooks {
		result = append(result, &dto.NotebookResponse{
			Id:    notebook.Id,
			Title: notebook.Title,
			Notes: counts[notebook.Id],
		})
	}

	return result, nil
}

func (c *notebookService) Show(ctx context.Context, userId string, id uint) (*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	// Ownership mismatch and nonexistence are the same NotFound: the
	// caller must not learn whether another user's notebook exists.
	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, apperr.ErrNotFound
	}

	noteCount, err := uow.NoteRepository().Count(ctx, specification.ByNotebookID{NotebookID: notebook.Id})
	if err != nil {
		return nil, err
	}

	return &dto.NotebookResponse{
		Id:    notebook.Id,
		Title: notebook.Title,
		Notes: noteCount,
	}, nil
}

func (c *notebookService) Create(ctx context.Context, userId string, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error) {
	if err := c.policy.ValidateTitle(req.Title); err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	notebook := entity.Notebook{
		Title:     req.Title,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.NotebookRepository().Create(ctx, &notebook); err != nil {
		return nil, err
	}

	c.publishActivity(ctx, "NOTEBOOK_CREATED", userId, map[string]interface{}{
		"notebook_id": notebook.Id,
		"title":       notebook.Title,
	})

	return &dto.NotebookResponse{
		Id:    notebook.Id,
		Title: notebook.Title,
		Notes: 0,
	}, nil
}

func (c *notebookService) Update(ctx context.Context, userId string, req *dto.UpdateNotebookRequest) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if notebook == nil {
		return apperr.ErrNotFound
	}

	if err := c.policy.ValidateTitle(req.Title); err != nil {
		return err
	}

	// An unchanged title still succeeds, it just skips the write.
	if notebook.Title == req.Title {
		return nil
	}

	now := time.Now()
	notebook.Title = req.Title
	notebook.UpdatedAt = &now

	if err := uow.NotebookRepository().Update(ctx, notebook); err != nil {
		return err
	}

	c.publishActivity(ctx, "NOTEBOOK_UPDATED", userId, map[string]interface{}{
		"notebook_id": notebook.Id,
		"title":       notebook.Title,
	})

	return nil
}

func (c *notebookService) Delete(ctx context.Context, userId string, id uint) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if notebook == nil {
		return apperr.ErrNotFound
	}

	// Notebook and its notes go together or not at all
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().DeleteByNotebookID(ctx, id); err != nil {
		return err
	}

	if err := uow.NotebookRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	c.publishActivity(ctx, "NOTEBOOK_DELETED", userId, map[string]interface{}{
		"notebook_id": id,
	})
	c.publishExternal(ctx, "NOTEBOOK_DELETED", map[string]interface{}{
		"notebook_id": id,
		"user_id":     userId,
	})

	return nil
}

// publishActivity emits an audit event. Activity is auxiliary, so a
// publish failure is logged and never fails the request.
func (c *notebookService) publishActivity(ctx context.Context, action, userId string, data map[string]interface{}) {
	msg := dto.ActivityMessage{
		EventId: uuid.NewString(),
		Action:  action,
		UserId:  userId,
		Data:    data,
	}

	msgJson, err := json.Marshal(msg)
	if err != nil {
		c.log.Warn("notebook-service", "failed to marshal activity message", map[string]interface{}{
			"error":  err.Error(),
			"action": action,
		})
		return
	}

	if err := c.publisherService.Publish(ctx, msgJson); err != nil {
		c.log.Warn("notebook-service", "failed to publish activity message", map[string]interface{}{
			"error":  err.Error(),
			"action": action,
		})
	}
}

func (c *notebookService) publishExternal(ctx context.Context, eventType string, data map[string]interface{}) {
	if c.eventPublisher == nil {
		return
	}

	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := c.eventPublisher.Publish(ctx, evt); err != nil {
		c.log.Warn("notebook-service", "failed to publish external event", map[string]interface{}{
			"error": err.Error(),
			"type":  eventType,
		})
	}
}

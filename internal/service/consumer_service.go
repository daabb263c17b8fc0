package service

import (
	"context"
	"encoding/json"
	"time"

	"wisenotes-be/internal/dto"
	"wisenotes-be/internal/entity"
	"wisenotes-be/internal/pkg/logger"
	"wisenotes-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the activity topic and persists one audit row
// per successful mutation.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("activity-consumer", "failed to unmarshal activity message", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack invalid messages to prevent infinite retry
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	entry := entity.ActivityEntry{
		EventId:   payload.EventId,
		Action:    payload.Action,
		UserId:    payload.UserId,
		Payload:   payload.Data,
		CreatedAt: time.Now(),
	}

	if err := uow.ActivityRepository().Create(ctx, &entry); err != nil {
		cs.log.Error("activity-consumer", "failed to persist activity entry", map[string]interface{}{
			"error":    err.Error(),
			"event_id": payload.EventId,
			"action":   payload.Action,
		})
		msg.Nack()
		return
	}

	msg.Ack()
}

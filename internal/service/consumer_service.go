package service

import (
	"context"
	"encoding/json"
	"time"

	"twin-chat-be/internal/dto"
	"twin-chat-be/internal/entity"
	"twin-chat-be/internal/pkg/logger"
	"twin-chat-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains turn-completed events into the system_logs audit
// table, off the request path.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     sysLogger,
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
	var event dto.TurnCompletedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal turn event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	module := "chat"
	details := string(msg.Payload)
	logEntry := entity.SystemLog{
		Id:        uuid.New(),
		Level:     "INFO",
		Module:    &module,
		Message:   "chat turn completed",
		Details:   &details,
		CreatedAt: time.Now(),
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SystemLogRepository().Create(ctx, &logEntry); err != nil {
		cs.logger.Error("consumer", "failed to persist audit row", map[string]interface{}{
			"session_id": event.SessionId,
			"error":      err.Error(),
		})
		// The trail is best-effort, drop rather than redeliver
	}

	msg.Ack()
}

package service

import (
	"context"
	"encoding/json"

	"mentorlink-be/internal/dto"
	"mentorlink-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the audit topic and writes each event to the
// structured log. Runs for the lifetime of the process.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	defer msg.Ack()

	var payload dto.AuditMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Warn("audit", "malformed audit message", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	details := map[string]interface{}{
		"occurred_at": payload.OccurredAt,
	}
	for k, v := range payload.Data {
		details[k] = v
	}
	cs.logger.Info("audit", payload.Type, details)
}

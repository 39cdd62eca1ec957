package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"sentia-be/internal/dto"
	"sentia-be/internal/pkg/logger"
	"sentia-be/internal/repository/memory"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	statsCache *memory.StatsRepository
	sysLogger  logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	statsCache *memory.StatsRepository,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		statsCache: statsCache,
		sysLogger:  sysLogger,
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
	var payload dto.SessionEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.sysLogger.Error("ConsumerService", "Failed to unmarshal session event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	// Any session mutation makes the cached dashboard stats stale.
	cs.statsCache.Invalidate()

	cs.sysLogger.Info("ConsumerService", "Dashboard stats cache invalidated", map[string]interface{}{
		"session_number": payload.SessionNumber,
	})
	msg.Ack()
}

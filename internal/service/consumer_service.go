package service

import (
	"context"
	"encoding/json"
	"log"

	"sentinel-kyc-be/internal/entity"
	"sentinel-kyc-be/internal/repository/unitofwork"
	"sentinel-kyc-be/internal/websocket"
	"sentinel-kyc-be/pkg/events"
	pktNats "sentinel-kyc-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	hub            *websocket.Hub
	eventPublisher *pktNats.Publisher
}

// NewConsumerService wires the activity pipeline. The hub and the NATS
// publisher may be nil, persistence always happens.
func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	hub *websocket.Hub,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		hub:            hub,
		eventPublisher: eventPublisher,
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
	defer msg.Ack()

	var payload ActivityRecordedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[WARN] Dropping malformed activity message %s: %v", msg.UUID, err)
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	entry := &entity.ActivityLog{
		Action:      payload.Action,
		AnalystName: payload.AnalystName,
		CreatedAt:   payload.OccurredAt,
	}
	if err := uow.ActivityLogRepository().Create(ctx, entry); err != nil {
		log.Printf("[WARN] Failed to persist activity entry: %v", err)
		return
	}

	if cs.hub != nil {
		cs.hub.Broadcast(map[string]interface{}{
			"id":           entry.Id,
			"action":       entry.Action,
			"analyst_name": entry.AnalystName,
			"created_at":   entry.CreatedAt,
		})
	}

	if cs.eventPublisher != nil {
		event := events.NewActivityRecorded(entry.Action, entry.AnalystName, entry.CreatedAt)
		if err := cs.eventPublisher.Publish(ctx, event); err != nil {
			log.Printf("[WARN] Failed to mirror activity event to NATS: %v", err)
		}
	}
}

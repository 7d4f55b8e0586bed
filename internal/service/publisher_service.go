package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ActivityRecordedPayload is the in-process message emitted whenever an
// analyst action should land in the activity feed.
type ActivityRecordedPayload struct {
	Action      string    `json:"action"`
	AnalystName string    `json:"analyst_name"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type IPublisherService interface {
	PublishActivity(ctx context.Context, action string, analystName string) error
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

func (p *publisherService) PublishActivity(ctx context.Context, action string, analystName string) error {
	payload := ActivityRecordedPayload{
		Action:      action,
		AnalystName: analystName,
		OccurredAt:  time.Now(),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	return p.pubSub.Publish(p.topicName, msg)
}

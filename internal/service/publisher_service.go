package service

import (
	"context"
	"encoding/json"

	"ai-chat-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
	PublishEvent(ctx context.Context, evt events.Event) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (p *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return p.pubSub.Publish(p.topicName, msg)
}

func (p *publisherService) PublishEvent(ctx context.Context, evt events.Event) error {
	payload, err := json.Marshal(map[string]interface{}{
		"event_type":  evt.EventType(),
		"payload":     evt.Payload(),
		"occurred_at": evt.Timestamp(),
	})
	if err != nil {
		return err
	}
	return p.Publish(ctx, payload)
}

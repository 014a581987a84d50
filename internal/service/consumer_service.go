package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ai-chat-be/internal/pkg/logger"
	"ai-chat-be/internal/repository/specification"
	"ai-chat-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topics     []string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topics []string,
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topics:     topics,
		uowFactory: uowFactory,
		logger:     sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	for _, topic := range cs.topics {
		messages, err := cs.pubSub.Subscribe(ctx, topic)
		if err != nil {
			return err
		}

		go func() {
			for msg := range messages {
				cs.processMessage(ctx, msg)
			}
		}()
	}

	return nil
}

type eventEnvelope struct {
	EventType  string                 `json:"event_type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var envelope eventEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		log.Printf("[ERROR] Failed to unmarshal event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	switch envelope.EventType {
	case "DOCUMENT_INGESTED":
		cs.verifyIngestion(ctx, msg, envelope)
	case "CHAT_EXCHANGE_COMPLETED":
		cs.logger.Info("audit", "chat exchange completed", envelope.Payload)
		msg.Ack()
	default:
		cs.logger.Warn("audit", "unknown event type "+envelope.EventType, envelope.Payload)
		msg.Ack()
	}
}

// verifyIngestion cross-checks the stored chunk count of a fresh collection
// against what the pipeline reported.
func (cs *consumerService) verifyIngestion(ctx context.Context, msg *message.Message, envelope eventEnvelope) {
	collectionName, _ := envelope.Payload["collection_name"].(string)
	if collectionName == "" {
		cs.logger.Warn("audit", "ingested event without collection name", envelope.Payload)
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.DocumentChunkRepository().Count(ctx,
		specification.ByCollectionName{CollectionName: collectionName},
	)
	if err != nil {
		log.Printf("[ERROR] Failed to count chunks for %s: %v", collectionName, err)
		msg.Nack() // Retriable
		return
	}

	// JSON numbers decode as float64
	reported, _ := envelope.Payload["chunk_count"].(float64)
	if int64(reported) != count {
		cs.logger.Warn("audit", "chunk count mismatch", map[string]interface{}{
			"collection_name": collectionName,
			"reported":        reported,
			"stored":          count,
		})
	} else {
		cs.logger.Info("audit", "ingestion verified", map[string]interface{}{
			"collection_name": collectionName,
			"chunk_count":     count,
		})
	}
	msg.Ack()
}

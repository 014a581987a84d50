package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "DOCUMENT_INGESTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent carries the common fields for concrete events.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewDocumentIngested records a completed ingestion run.
func NewDocumentIngested(collectionName, namespace, fileName string, chunkCount int) Event {
	return BaseEvent{
		Type: "DOCUMENT_INGESTED",
		Data: map[string]interface{}{
			"collection_name": collectionName,
			"namespace":       namespace,
			"file_name":       fileName,
			"chunk_count":     chunkCount,
		},
		OccurredAt: time.Now(),
	}
}

// NewChatExchangeCompleted records a finished streamed exchange.
func NewChatExchangeCompleted(chatSessionId string, inputLength, replyLength int) Event {
	return BaseEvent{
		Type: "CHAT_EXCHANGE_COMPLETED",
		Data: map[string]interface{}{
			"chat_session_id": chatSessionId,
			"input_length":    inputLength,
			"reply_length":    replyLength,
		},
		OccurredAt: time.Now(),
	}
}

package dto

type IngestAndQueryResponse struct {
	CollectionName string `json:"collection_name"`
	ChunkCount     int    `json:"chunk_count"`
	Answer         string `json:"answer"`
}

// Event payloads published on the in-process bus.

type DocumentIngestedEvent struct {
	CollectionName string `json:"collection_name"`
	Namespace      string `json:"namespace"`
	FileName       string `json:"file_name"`
	ChunkCount     int    `json:"chunk_count"`
}

type ChatExchangeCompletedEvent struct {
	ChatSessionId string `json:"chat_session_id"`
	InputLength   int    `json:"input_length"`
	ReplyLength   int    `json:"reply_length"`
}

package constant

// Stored chat roles. These are the only values accepted at the API boundary
// and the only values ever written to chat_histories.role.
const (
	ChatRoleSystem = "system"
	ChatRoleHuman  = "human"
	ChatRoleAI     = "ai"
)

// Provider-side roles used by the LLM providers.
const (
	LLMRoleSystem    = "system"
	LLMRoleUser      = "user"
	LLMRoleAssistant = "assistant"
)

// chatRoleToLLMRole is the exhaustive mapping from stored roles to the
// provider message representation. Unknown roles are rejected at the
// boundary, so a miss here means corrupted storage.
var chatRoleToLLMRole = map[string]string{
	ChatRoleSystem: LLMRoleSystem,
	ChatRoleHuman:  LLMRoleUser,
	ChatRoleAI:     LLMRoleAssistant,
}

// IsValidChatRole reports whether role is one of the closed enum values.
func IsValidChatRole(role string) bool {
	_, ok := chatRoleToLLMRole[role]
	return ok
}

// LLMRoleFor maps a stored role to the provider role. The second return is
// false when the stored role is not part of the enum.
func LLMRoleFor(role string) (string, bool) {
	r, ok := chatRoleToLLMRole[role]
	return r, ok
}

// Event topics for the in-process pub/sub.
const (
	TopicDocumentIngested      = "document.ingested"
	TopicChatExchangeCompleted = "chat.exchange.completed"
)

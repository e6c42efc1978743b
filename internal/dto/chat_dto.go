package dto

import (
	"personal-assistant-be/pkg/assistant/state"
)

type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"session_id"`
}

type ChatResponse struct {
	SessionId      string             `json:"session_id"`
	Response       string             `json:"response"`
	Intent         string             `json:"intent"`
	PlannedActions []string           `json:"planned_actions"`
	ToolResults    []state.ToolResult `json:"tool_results"`
	MemoriesUsed   int                `json:"memories_used"`
}

// PublishEmbedConversationMessage is the payload on the EMBED_CONVERSATION
// topic: the consumer loads the row and indexes it into semantic memory.
type PublishEmbedConversationMessage struct {
	ConversationId int64 `json:"conversation_id"`
}

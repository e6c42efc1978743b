package events

import "time"

const ChatCompletedType = "CHAT_COMPLETED"

// NewChatCompletedEvent marks the end of one assistant exchange, consumed by
// dashboards or downstream automations listening on the bus.
func NewChatCompletedEvent(sessionId, intent string, persisted bool) Event {
	return BaseEvent{
		Type: ChatCompletedType,
		Data: map[string]interface{}{
			"session_id": sessionId,
			"intent":     intent,
			"persisted":  persisted,
		},
		OccurredAt: time.Now(),
	}
}

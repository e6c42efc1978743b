package entity

import (
	"time"
)

type Conversation struct {
	Id                int64
	UserMessage       string
	AssistantResponse string
	Intent            string
	SessionId         string
	CreatedAt         time.Time
}

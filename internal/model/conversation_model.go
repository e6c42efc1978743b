package model

import (
	"time"
)

type Conversation struct {
	Id                int64     `gorm:"primaryKey;autoIncrement"`
	UserMessage       string    `gorm:"type:text;not null"`
	AssistantResponse string    `gorm:"type:text;not null"`
	Intent            string    `gorm:"type:varchar(32);not null;index"`
	SessionId         string    `gorm:"type:varchar(64);index"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
}

func (Conversation) TableName() string {
	return "conversations"
}

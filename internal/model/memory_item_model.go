package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type MemoryItem struct {
	Id        string          `gorm:"type:varchar(64);primaryKey"`
	Category  string          `gorm:"type:varchar(32);not null;index"`
	Content   string          `gorm:"type:text;not null"`
	Metadata  datatypes.JSON  `gorm:"type:jsonb"`
	Embedding pgvector.Vector `gorm:"type:vector(768)"` // nomic-embed-text uses 768 dimensions
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}

func (MemoryItem) TableName() string {
	return "memory_items"
}

package model

import (
	"time"
)

type LearningProgress struct {
	Id        int64      `gorm:"primaryKey;autoIncrement"`
	Topic     string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_learning_topic_subtopic"`
	Subtopic  string     `gorm:"type:varchar(255);not null;default:'';uniqueIndex:idx_learning_topic_subtopic"`
	Progress  int        `gorm:"not null;default:0"`
	Status    string     `gorm:"type:varchar(24);not null;default:not_started"`
	Notes     string     `gorm:"type:text"`
	StartedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime"`
}

func (LearningProgress) TableName() string {
	return "learning_progress"
}

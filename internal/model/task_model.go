package model

import (
	"time"
)

type Task struct {
	Id          int64      `gorm:"primaryKey;autoIncrement"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Priority    string     `gorm:"type:varchar(16);not null;default:medium"`
	Status      string     `gorm:"type:varchar(16);not null;default:pending;index"`
	DueDate     *time.Time `gorm:"index"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	CompletedAt *time.Time
}

func (Task) TableName() string {
	return "tasks"
}

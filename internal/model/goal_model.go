package model

import (
	"time"
)

type Goal struct {
	Id          int64      `gorm:"primaryKey;autoIncrement"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	TargetDate  *time.Time
	Status      string     `gorm:"type:varchar(16);not null;default:active;index"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

func (Goal) TableName() string {
	return "goals"
}

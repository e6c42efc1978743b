package model

import (
	"time"
)

type Habit struct {
	Id          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Frequency   string    `gorm:"type:varchar(32);not null;default:daily"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Habit) TableName() string {
	return "habits"
}

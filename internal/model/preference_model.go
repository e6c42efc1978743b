package model

import (
	"time"
)

type Preference struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	Key       string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	Value     string    `gorm:"type:text;not null"`
	Category  string    `gorm:"type:varchar(64);not null;default:general;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Preference) TableName() string {
	return "preferences"
}

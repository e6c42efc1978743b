package model

import (
	"time"
)

type Decision struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	Topic     string    `gorm:"type:varchar(255);not null"`
	Context   string    `gorm:"type:text"`
	Outcome   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Decision) TableName() string {
	return "decisions"
}

package model

import (
	"time"
)

type ActionPlan struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	PlanDate  string    `gorm:"type:varchar(10);not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ActionPlan) TableName() string {
	return "action_plans"
}

package entity

import (
	"time"
)

type ActionPlan struct {
	Id        int64
	PlanDate  string
	Content   string
	CreatedAt time.Time
}

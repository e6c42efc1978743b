package entity

import (
	"time"
)

type Goal struct {
	Id          int64
	Title       string
	Description string
	TargetDate  *time.Time
	Status      string
	CreatedAt   time.Time
}

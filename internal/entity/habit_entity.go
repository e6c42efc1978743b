package entity

import (
	"time"
)

type Habit struct {
	Id          int64
	Name        string
	Description string
	Frequency   string
	CreatedAt   time.Time
}

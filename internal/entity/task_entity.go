package entity

import (
	"time"
)

type Task struct {
	Id          int64
	Title       string
	Description string
	Priority    string
	Status      string
	DueDate     *time.Time
	CreatedAt   time.Time
	CompletedAt *time.Time
}

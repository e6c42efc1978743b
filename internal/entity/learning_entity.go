package entity

import (
	"time"
)

type LearningProgress struct {
	Id        int64
	Topic     string
	Subtopic  string
	Progress  int
	Status    string
	Notes     string
	StartedAt time.Time
	UpdatedAt *time.Time
}

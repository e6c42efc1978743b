package entity

import (
	"time"
)

type Decision struct {
	Id        int64
	Topic     string
	Context   string
	Outcome   string
	CreatedAt time.Time
}

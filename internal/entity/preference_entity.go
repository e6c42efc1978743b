package entity

import (
	"time"
)

type Preference struct {
	Id        int64
	Key       string
	Value     string
	Category  string
	UpdatedAt time.Time
}

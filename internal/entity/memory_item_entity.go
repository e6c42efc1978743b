package entity

import (
	"time"
)

// MemoryItem is one entry in the semantic memory store. Ids carry a category
// prefix ("note_", "learning_", "conv_") followed by a uuid so they stay
// unique across categories.
type MemoryItem struct {
	Id        string
	Category  string
	Content   string
	Metadata  map[string]string
	CreatedAt time.Time
}

// MemoryMatch is a MemoryItem together with its cosine distance to the query
// vector. Lower distance means more relevant.
type MemoryMatch struct {
	Item     *MemoryItem
	Distance float64
}

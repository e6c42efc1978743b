// Package memory is the assistant's semantic long-term memory, a thin facade
// over an embedding provider and a vector-indexed repository.
package memory

import (
	"context"
)

const (
	CategoryNote         = "note"
	CategoryLearning     = "learning"
	CategoryConversation = "conversation"
)

// Categories lists every memory category in fan-out search order.
var Categories = []string{CategoryNote, CategoryLearning, CategoryConversation}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Item is one stored memory.
type Item struct {
	Id       string
	Category string
	Content  string
	Metadata map[string]string
}

// Match is a search hit with its cosine distance, lower is closer.
type Match struct {
	Item     Item
	Distance float64
}

// Store is the semantic memory contract.
type Store interface {
	// Add indexes content under a category and returns the generated id.
	Add(ctx context.Context, category, content string, metadata map[string]string) (string, error)

	// Search returns up to limit matches from one category, nearest first.
	Search(ctx context.Context, category, query string, limit int) ([]Match, error)

	// SearchAll fans out over every category and returns the combined
	// matches grouped in category order.
	SearchAll(ctx context.Context, query string, perCategory int) ([]Match, error)

	// Delete removes one item by id.
	Delete(ctx context.Context, id string) error
}

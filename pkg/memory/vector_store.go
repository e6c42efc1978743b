package memory

import (
	"context"
	"fmt"
	"time"

	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/repository/contract"
	"personal-assistant-be/pkg/embedding"

	"github.com/google/uuid"
)

// idPrefixes keeps ids readable and unique across categories.
var idPrefixes = map[string]string{
	CategoryNote:         "note_",
	CategoryLearning:     "learning_",
	CategoryConversation: "conv_",
}

type VectorStore struct {
	repo     contract.MemoryItemRepository
	embedder embedding.EmbeddingProvider
}

var _ Store = &VectorStore{}

func NewVectorStore(repo contract.MemoryItemRepository, embedder embedding.EmbeddingProvider) *VectorStore {
	return &VectorStore{
		repo:     repo,
		embedder: embedder,
	}
}

func (s *VectorStore) Add(ctx context.Context, category, content string, metadata map[string]string) (string, error) {
	if !IsValidCategory(category) {
		return "", fmt.Errorf("unknown memory category: %s", category)
	}

	resp, err := s.embedder.Generate(content, "RETRIEVAL_DOCUMENT")
	if err != nil {
		return "", fmt.Errorf("embed content: %w", err)
	}

	item := &entity.MemoryItem{
		Id:        idPrefixes[category] + uuid.NewString(),
		Category:  category,
		Content:   content,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, item, resp.Embedding.Values); err != nil {
		return "", fmt.Errorf("store memory: %w", err)
	}
	return item.Id, nil
}

func (s *VectorStore) Search(ctx context.Context, category, query string, limit int) ([]Match, error) {
	if !IsValidCategory(category) {
		return nil, fmt.Errorf("unknown memory category: %s", category)
	}

	resp, err := s.embedder.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	matches, err := s.repo.SearchSimilar(ctx, category, resp.Embedding.Values, limit)
	if err != nil {
		return nil, err
	}
	return toMatches(matches), nil
}

func (s *VectorStore) SearchAll(ctx context.Context, query string, perCategory int) ([]Match, error) {
	// Embed once, reuse the vector for every category.
	resp, err := s.embedder.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	var combined []Match
	for _, category := range Categories {
		matches, err := s.repo.SearchSimilar(ctx, category, resp.Embedding.Values, perCategory)
		if err != nil {
			return nil, err
		}
		combined = append(combined, toMatches(matches)...)
	}
	return combined, nil
}

func (s *VectorStore) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func toMatches(found []*entity.MemoryMatch) []Match {
	matches := make([]Match, len(found))
	for i, m := range found {
		matches[i] = Match{
			Item: Item{
				Id:       m.Item.Id,
				Category: m.Item.Category,
				Content:  m.Item.Content,
				Metadata: m.Item.Metadata,
			},
			Distance: m.Distance,
		}
	}
	return matches
}

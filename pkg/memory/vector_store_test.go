package memory_test

import (
	"context"
	"strings"
	"testing"

	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/repository/specification"
	"personal-assistant-be/pkg/embedding"
	"personal-assistant-be/pkg/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmbedder struct {
	calls int
}

func (f *fakeEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	f.calls++
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.1, 0.2, 0.3}},
	}, nil
}

type fakeMemoryRepo struct {
	items map[string]*entity.MemoryItem
}

func newFakeMemoryRepo() *fakeMemoryRepo {
	return &fakeMemoryRepo{items: map[string]*entity.MemoryItem{}}
}

func (r *fakeMemoryRepo) Create(ctx context.Context, item *entity.MemoryItem, emb []float32) error {
	r.items[item.Id] = item
	return nil
}

func (r *fakeMemoryRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeMemoryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MemoryItem, error) {
	return nil, nil
}

func (r *fakeMemoryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MemoryItem, error) {
	var all []*entity.MemoryItem
	for _, item := range r.items {
		all = append(all, item)
	}
	return all, nil
}

func (r *fakeMemoryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *fakeMemoryRepo) SearchSimilar(ctx context.Context, category string, emb []float32, limit int) ([]*entity.MemoryMatch, error) {
	var matches []*entity.MemoryMatch
	for _, item := range r.items {
		if item.Category != category {
			continue
		}
		matches = append(matches, &entity.MemoryMatch{Item: item, Distance: 0.25})
		if len(matches) == limit {
			break
		}
	}
	return matches, nil
}

func TestAddGeneratesPrefixedId(t *testing.T) {
	repo := newFakeMemoryRepo()
	store := memory.NewVectorStore(repo, &fakeEmbedder{})

	id, err := store.Add(context.Background(), memory.CategoryNote, "pgvector needs normalized vectors", nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "note_"))
	assert.Len(t, repo.items, 1)
}

func TestAddRejectsUnknownCategory(t *testing.T) {
	store := memory.NewVectorStore(newFakeMemoryRepo(), &fakeEmbedder{})

	_, err := store.Add(context.Background(), "dreams", "content", nil)
	assert.Error(t, err)
}

func TestSearchAllEmbedsOnceAndFansOut(t *testing.T) {
	repo := newFakeMemoryRepo()
	embedder := &fakeEmbedder{}
	store := memory.NewVectorStore(repo, embedder)

	ctx := context.Background()
	_, err := store.Add(ctx, memory.CategoryNote, "bought a standing desk", nil)
	require.NoError(t, err)
	_, err = store.Add(ctx, memory.CategoryLearning, "started learning Go", nil)
	require.NoError(t, err)
	embedder.calls = 0

	matches, err := store.SearchAll(ctx, "desk", 3)
	require.NoError(t, err)

	// One embedding call total, not one per category.
	assert.Equal(t, 1, embedder.calls)
	assert.Len(t, matches, 2)
}

func TestDeleteRemovesItem(t *testing.T) {
	repo := newFakeMemoryRepo()
	store := memory.NewVectorStore(repo, &fakeEmbedder{})

	ctx := context.Background()
	id, err := store.Add(ctx, memory.CategoryNote, "temporary", nil)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, id))
	assert.Empty(t, repo.items)
}

package tools_test

import (
	"context"
	"fmt"
	"testing"

	"personal-assistant-be/pkg/memory"
	"personal-assistant-be/pkg/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	items  map[string]memory.Item
	nextId int
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: map[string]memory.Item{}}
}

func (s *fakeStore) Add(ctx context.Context, category, content string, metadata map[string]string) (string, error) {
	s.nextId++
	id := fmt.Sprintf("%s_%d", category, s.nextId)
	s.items[id] = memory.Item{Id: id, Category: category, Content: content, Metadata: metadata}
	return id, nil
}

func (s *fakeStore) Search(ctx context.Context, category, query string, limit int) ([]memory.Match, error) {
	var out []memory.Match
	for _, item := range s.items {
		if item.Category == category {
			out = append(out, memory.Match{Item: item, Distance: 0.1})
		}
	}
	return out, nil
}

func (s *fakeStore) SearchAll(ctx context.Context, query string, perCategory int) ([]memory.Match, error) {
	var out []memory.Match
	for _, category := range memory.Categories {
		matches, _ := s.Search(ctx, category, query, perCategory)
		out = append(out, matches...)
	}
	return out, nil
}

func (s *fakeStore) Delete(ctx context.Context, id string) error {
	delete(s.items, id)
	return nil
}

func TestStorePreferenceUpsertsByKey(t *testing.T) {
	uow := newFakeUow()
	r := tools.NewRegistry()
	r.MustRegister(tools.NewMemoryTools(uow, newFakeStore())...)
	ctx := context.Background()

	first := r.Invoke(ctx, "store_preference", map[string]interface{}{
		"key": "work_hours", "value": "9-17",
	})
	require.True(t, first.Success(), first.Error())

	second := r.Invoke(ctx, "store_preference", map[string]interface{}{
		"key": "work_hours", "value": "10-18",
	})
	require.True(t, second.Success(), second.Error())

	lookup := r.Invoke(ctx, "get_preference", map[string]interface{}{"key": "work_hours"})
	require.True(t, lookup.Success(), lookup.Error())
	assert.Equal(t, "10-18", lookup.Payload()["value"])
	assert.Equal(t, "general", lookup.Payload()["category"])
}

func TestGetPreferenceNotFound(t *testing.T) {
	r := tools.NewRegistry()
	r.MustRegister(tools.NewMemoryTools(newFakeUow(), newFakeStore())...)

	res := r.Invoke(context.Background(), "get_preference", map[string]interface{}{"key": "editor"})

	assert.False(t, res.Success())
	assert.Equal(t, "Preference 'editor' not found", res.Error())
}

func TestStoreConversationIndexesIntoConversationCategory(t *testing.T) {
	store := newFakeStore()
	r := tools.NewRegistry()
	r.MustRegister(tools.NewMemoryTools(newFakeUow(), store)...)

	res := r.Invoke(context.Background(), "store_conversation", map[string]interface{}{
		"user_message":       "remember I prefer tea",
		"assistant_response": "Noted, tea it is.",
		"intent":             "remembering",
	})

	require.True(t, res.Success(), res.Error())
	id := res.Payload()["memory_id"].(string)
	item := store.items[id]
	assert.Equal(t, memory.CategoryConversation, item.Category)
	assert.Contains(t, item.Content, "remember I prefer tea")
	assert.Equal(t, "remembering", item.Metadata["intent"])
}

func TestSearchMemoryFansOutAllCategories(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()
	_, err := store.Add(ctx, memory.CategoryNote, "note content", nil)
	require.NoError(t, err)
	_, err = store.Add(ctx, memory.CategoryLearning, "learning content", nil)
	require.NoError(t, err)

	r := tools.NewRegistry()
	r.MustRegister(tools.NewMemoryTools(newFakeUow(), store)...)

	res := r.Invoke(ctx, "search_memory", map[string]interface{}{"query": "content"})

	require.True(t, res.Success(), res.Error())
	assert.Equal(t, 2, res.Payload()["count"])
}

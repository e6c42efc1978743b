package tools

import (
	"context"
	"time"

	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/repository/specification"
	"personal-assistant-be/internal/repository/unitofwork"
	"personal-assistant-be/pkg/memory"
)

// NewMemoryTools returns the memory and preference tool set.
func NewMemoryTools(uowFactory unitofwork.RepositoryFactory, store memory.Store) []Descriptor {
	return []Descriptor{
		{
			Name:        "search_memory",
			Description: "Search long-term memory across notes, learning history and past conversations.",
			Parameters: []Parameter{
				{Name: "query", Type: TypeString, Description: "What to look for.", Required: true},
				{Name: "limit", Type: TypeInteger, Description: "Maximum results per category.", Default: int64(3)},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				limit, _ := ArgInt(args, "limit")
				matches, err := store.SearchAll(ctx, ArgString(args, "query"), int(limit))
				if err != nil {
					return Fail("failed to search memory: %v", err)
				}

				results := make([]map[string]interface{}, len(matches))
				for i, m := range matches {
					results[i] = map[string]interface{}{
						"id":       m.Item.Id,
						"category": m.Item.Category,
						"content":  m.Item.Content,
						"distance": m.Distance,
					}
				}
				return Ok(map[string]interface{}{
					"results": results,
					"count":   len(results),
				})
			},
		},
		{
			Name:        "store_conversation",
			Description: "Store a conversation exchange into long-term memory.",
			Parameters: []Parameter{
				{Name: "user_message", Type: TypeString, Description: "What the user said.", Required: true},
				{Name: "assistant_response", Type: TypeString, Description: "What the assistant answered.", Required: true},
				{Name: "intent", Type: TypeString, Description: "Detected intent of the exchange.", Default: "general"},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				content := "User: " + ArgString(args, "user_message") + "\nAssistant: " + ArgString(args, "assistant_response")
				id, err := store.Add(ctx, memory.CategoryConversation, content, map[string]string{
					"intent": ArgString(args, "intent"),
				})
				if err != nil {
					return Fail("failed to store conversation: %v", err)
				}
				return Ok(map[string]interface{}{
					"memory_id": id,
					"message":   "Conversation stored",
				})
			},
		},
		{
			Name:        "store_preference",
			Description: "Save or update a user preference by key.",
			Parameters: []Parameter{
				{Name: "key", Type: TypeString, Description: "Preference key, e.g. 'work_hours'.", Required: true},
				{Name: "value", Type: TypeString, Description: "Preference value.", Required: true},
				{Name: "category", Type: TypeString, Description: "Preference grouping.", Default: "general"},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				pref := &entity.Preference{
					Key:       ArgString(args, "key"),
					Value:     ArgString(args, "value"),
					Category:  ArgString(args, "category"),
					UpdatedAt: time.Now(),
				}

				uow := uowFactory.NewUnitOfWork(ctx)
				if err := uow.PreferenceRepository().Upsert(ctx, pref); err != nil {
					return Fail("failed to store preference: %v", err)
				}
				return Ok(map[string]interface{}{
					"message": "Preference '" + pref.Key + "' saved",
				})
			},
		},
		{
			Name:        "get_preference",
			Description: "Look up a single preference by key.",
			Parameters: []Parameter{
				{Name: "key", Type: TypeString, Description: "Preference key.", Required: true},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				key := ArgString(args, "key")

				uow := uowFactory.NewUnitOfWork(ctx)
				pref, err := uow.PreferenceRepository().FindOne(ctx, specification.Filter("key", key))
				if err != nil {
					return Fail("failed to load preference: %v", err)
				}
				if pref == nil {
					return Fail("Preference '%s' not found", key)
				}
				return Ok(map[string]interface{}{
					"key":      pref.Key,
					"value":    pref.Value,
					"category": pref.Category,
				})
			},
		},
		{
			Name:        "get_all_preferences",
			Description: "List every stored preference.",
			Parameters:  nil,
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				uow := uowFactory.NewUnitOfWork(ctx)
				prefs, err := uow.PreferenceRepository().FindAll(ctx, specification.OrderBy{Field: "key", Desc: false})
				if err != nil {
					return Fail("failed to list preferences: %v", err)
				}

				out := make(map[string]interface{}, len(prefs))
				for _, p := range prefs {
					out[p.Key] = p.Value
				}
				return Ok(map[string]interface{}{
					"preferences": out,
					"count":       len(out),
				})
			},
		},
	}
}

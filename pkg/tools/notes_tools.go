package tools

import (
	"context"

	"personal-assistant-be/pkg/memory"
)

// NewNoteTools returns the free-form note tool set backed by the semantic
// memory store.
func NewNoteTools(store memory.Store) []Descriptor {
	return []Descriptor{
		{
			Name:        "save_note",
			Description: "Save a free-form note to long-term memory.",
			Parameters: []Parameter{
				{Name: "content", Type: TypeString, Description: "The note text.", Required: true},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				id, err := store.Add(ctx, memory.CategoryNote, ArgString(args, "content"), map[string]string{
					"source": "save_note",
				})
				if err != nil {
					return Fail("failed to save note: %v", err)
				}
				return Ok(map[string]interface{}{
					"note_id": id,
					"message": "Note saved",
				})
			},
		},
		{
			Name:        "search_notes",
			Description: "Search saved notes by meaning, not keywords.",
			Parameters: []Parameter{
				{Name: "query", Type: TypeString, Description: "What to look for.", Required: true},
				{Name: "limit", Type: TypeInteger, Description: "Maximum results.", Default: int64(5)},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				limit, _ := ArgInt(args, "limit")
				matches, err := store.Search(ctx, memory.CategoryNote, ArgString(args, "query"), int(limit))
				if err != nil {
					return Fail("failed to search notes: %v", err)
				}

				results := make([]map[string]interface{}, len(matches))
				for i, m := range matches {
					results[i] = map[string]interface{}{
						"id":       m.Item.Id,
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
			Name:        "delete_note",
			Description: "Delete a note by its id.",
			Parameters: []Parameter{
				{Name: "note_id", Type: TypeString, Description: "Id returned when the note was saved.", Required: true},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				if err := store.Delete(ctx, ArgString(args, "note_id")); err != nil {
					return Fail("failed to delete note: %v", err)
				}
				return Ok(map[string]interface{}{
					"message": "Note deleted",
				})
			},
		},
	}
}

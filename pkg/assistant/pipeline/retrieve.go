package pipeline

import (
	"context"

	"personal-assistant-be/internal/pkg/logger"
	"personal-assistant-be/pkg/assistant/state"
	"personal-assistant-be/pkg/memory"
)

// RetrievalStage fans the user input out over every memory category. A
// degraded memory store yields an empty context rather than a failed
// exchange.
type RetrievalStage struct {
	store       memory.Store
	perCategory int
	logger      logger.ILogger
}

func NewRetrievalStage(store memory.Store, perCategory int, log logger.ILogger) *RetrievalStage {
	if perCategory <= 0 {
		perCategory = 3
	}
	return &RetrievalStage{store: store, perCategory: perCategory, logger: log}
}

func (s *RetrievalStage) Name() string { return "MemoryRetrieval" }

func (s *RetrievalStage) Run(ctx context.Context, session *state.Session) (*state.Update, error) {
	memories := []state.RetrievedMemory{}

	matches, err := s.store.SearchAll(ctx, session.Input, s.perCategory)
	if err != nil {
		s.logger.Warn("MemoryRetrieval", "memory store unavailable, continuing without context", map[string]interface{}{
			"session_id": session.Id,
			"error":      err.Error(),
		})
		return &state.Update{Memories: &memories}, nil
	}

	for _, m := range matches {
		memories = append(memories, state.RetrievedMemory{
			Category: m.Item.Category,
			Content:  m.Item.Content,
			Metadata: m.Item.Metadata,
		})
	}
	return &state.Update{Memories: &memories}, nil
}

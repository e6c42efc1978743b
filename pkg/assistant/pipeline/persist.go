package pipeline

import (
	"context"

	"personal-assistant-be/internal/constant"
	"personal-assistant-be/internal/pkg/logger"
	"personal-assistant-be/pkg/assistant/state"
)

// Exchange is one completed user/assistant turn handed to the recorder.
type Exchange struct {
	SessionId         string
	UserMessage       string
	AssistantResponse string
	Intent            string
}

// Recorder persists exchanges. Implementations are best-effort from the
// pipeline's point of view.
type Recorder interface {
	Record(ctx context.Context, exchange Exchange) error
}

// PersistStage stores the exchange when the intent marks it worth keeping.
// Recording is fire-and-forget: a recorder fault is logged and dropped so
// the user still gets their answer.
type PersistStage struct {
	recorder Recorder
	logger   logger.ILogger
}

func NewPersistStage(recorder Recorder, log logger.ILogger) *PersistStage {
	return &PersistStage{recorder: recorder, logger: log}
}

func (s *PersistStage) Name() string { return "Persistence" }

func (s *PersistStage) Run(ctx context.Context, session *state.Session) (*state.Update, error) {
	if !constant.IsPersistWorthy(session.Intent) {
		return &state.Update{}, nil
	}

	err := s.recorder.Record(ctx, Exchange{
		SessionId:         session.Id,
		UserMessage:       session.Input,
		AssistantResponse: session.Response,
		Intent:            session.Intent,
	})
	if err != nil {
		s.logger.Warn("Persistence", "failed to record exchange", map[string]interface{}{
			"session_id": session.Id,
			"error":      err.Error(),
		})
	}
	return &state.Update{}, nil
}

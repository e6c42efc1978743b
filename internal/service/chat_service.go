package service

import (
	"context"
	"time"

	"personal-assistant-be/internal/dto"
	"personal-assistant-be/internal/pkg/logger"
	"personal-assistant-be/internal/repository/session"
	"personal-assistant-be/pkg/assistant/pipeline"
	"personal-assistant-be/pkg/assistant/state"
	"personal-assistant-be/pkg/events"

	"personal-assistant-be/internal/constant"

	"github.com/google/uuid"
)

type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	ResetSession(ctx context.Context, sessionId string) error
}

// EventPublisher pushes completed-exchange events onto the bus.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type chatService struct {
	orchestrator   *pipeline.Orchestrator
	transcripts    session.TranscriptStore
	eventPublisher EventPublisher
	logger         logger.ILogger
}

func NewChatService(
	orchestrator *pipeline.Orchestrator,
	transcripts session.TranscriptStore,
	eventPublisher EventPublisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		orchestrator:   orchestrator,
		transcripts:    transcripts,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	sessionId := req.SessionId
	if sessionId == "" {
		sessionId = uuid.NewString()
	}

	transcript, _, err := s.transcripts.Load(ctx, sessionId)
	if err != nil {
		// A lost transcript degrades to a fresh session, not a failed chat.
		s.logger.Warn("Chat", "failed to load session transcript", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		transcript = nil
	}

	sess := &state.Session{
		Id:         sessionId,
		Input:      req.Message,
		Transcript: transcript,
		Metadata: map[string]string{
			"received_at": time.Now().Format(time.RFC3339),
		},
	}

	sess = s.orchestrator.Run(ctx, sess)

	if err := s.transcripts.Save(ctx, sessionId, sess.Transcript); err != nil {
		s.logger.Warn("Chat", "failed to save session transcript", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
	}

	if s.eventPublisher != nil {
		evt := events.NewChatCompletedEvent(sessionId, sess.Intent, constant.IsPersistWorthy(sess.Intent))
		// Auxiliary event, log but don't fail the request
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("Chat", "failed to publish chat completed event", map[string]interface{}{
				"session_id": sessionId,
				"error":      err.Error(),
			})
		}
	}

	return &dto.ChatResponse{
		SessionId:      sessionId,
		Response:       sess.Response,
		Intent:         sess.Intent,
		PlannedActions: sess.PlannedActions,
		ToolResults:    sess.ToolResults,
		MemoriesUsed:   len(sess.Memories),
	}, nil
}

func (s *chatService) ResetSession(ctx context.Context, sessionId string) error {
	return s.transcripts.Delete(ctx, sessionId)
}

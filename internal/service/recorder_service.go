package service

import (
	"context"
	"encoding/json"
	"time"

	"personal-assistant-be/internal/dto"
	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/pkg/logger"
	"personal-assistant-be/internal/repository/unitofwork"
	"personal-assistant-be/pkg/assistant/pipeline"
)

// recorderService persists one exchange as a conversation row and hands the
// embedding work to the consumer via the message bus. The pipeline treats
// recording as best-effort; this service only reports the error.
type recorderService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewRecorderService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) pipeline.Recorder {
	return &recorderService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *recorderService) Record(ctx context.Context, exchange pipeline.Exchange) error {
	conversation := &entity.Conversation{
		UserMessage:       exchange.UserMessage,
		AssistantResponse: exchange.AssistantResponse,
		Intent:            exchange.Intent,
		SessionId:         exchange.SessionId,
		CreatedAt:         time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
		return err
	}

	payload, err := json.Marshal(dto.PublishEmbedConversationMessage{
		ConversationId: conversation.Id,
	})
	if err != nil {
		return err
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		// The row is stored; only the semantic index lags behind.
		s.logger.Warn("Recorder", "failed to enqueue conversation embedding", map[string]interface{}{
			"conversation_id": conversation.Id,
			"error":           err.Error(),
		})
	}
	return nil
}

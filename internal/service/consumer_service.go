package service

import (
	"context"
	"encoding/json"
	"log"

	"personal-assistant-be/internal/dto"
	"personal-assistant-be/internal/repository/specification"
	"personal-assistant-be/internal/repository/unitofwork"
	"personal-assistant-be/pkg/memory"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the EMBED_CONVERSATION topic: it loads stored
// conversation rows and indexes them into the semantic memory store so
// retrieval can surface past exchanges.
type consumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	uowFactory  unitofwork.RepositoryFactory
	memoryStore memory.Store
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	memoryStore memory.Store,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		uowFactory:  uowFactory,
		memoryStore: memoryStore,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedConversationMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Indexing conversation %d into memory", payload.ConversationId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: payload.ConversationId})
	if err != nil {
		log.Printf("[ERROR] Failed to load conversation %d: %v", payload.ConversationId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if conversation == nil {
		log.Printf("[ERROR] Conversation not found: %d", payload.ConversationId)
		msg.Ack() // Row deleted? Ack.
		return
	}

	content := "User: " + conversation.UserMessage + "\nAssistant: " + conversation.AssistantResponse
	_, err = cs.memoryStore.Add(ctx, memory.CategoryConversation, content, map[string]string{
		"intent":     conversation.Intent,
		"session_id": conversation.SessionId,
	})
	if err != nil {
		log.Printf("[ERROR] Failed to index conversation %d: %v", payload.ConversationId, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Conversation %d indexed", payload.ConversationId)
	msg.Ack()
}

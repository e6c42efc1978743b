package mapper

import (
	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/model"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}

	return &entity.Conversation{
		Id:                c.Id,
		UserMessage:       c.UserMessage,
		AssistantResponse: c.AssistantResponse,
		Intent:            c.Intent,
		SessionId:         c.SessionId,
		CreatedAt:         c.CreatedAt,
	}
}

func (m *ConversationMapper) ToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}

	return &model.Conversation{
		Id:                c.Id,
		UserMessage:       c.UserMessage,
		AssistantResponse: c.AssistantResponse,
		Intent:            c.Intent,
		SessionId:         c.SessionId,
		CreatedAt:         c.CreatedAt,
	}
}

func (m *ConversationMapper) ToEntities(convs []*model.Conversation) []*entity.Conversation {
	entities := make([]*entity.Conversation, len(convs))
	for i, c := range convs {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

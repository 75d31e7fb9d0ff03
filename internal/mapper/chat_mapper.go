package mapper

import (
	"twin-chat-be/internal/entity"
	"twin-chat-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	return &entity.ChatSession{
		Id:        s.Id,
		SessionId: s.SessionId,
		UserName:  s.UserName,
		UserEmail: s.UserEmail,
		UserPhone: s.UserPhone,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	return &model.ChatSession{
		Id:        s.Id,
		SessionId: s.SessionId,
		UserName:  s.UserName,
		UserEmail: s.UserEmail,
		UserPhone: s.UserPhone,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// Message Mappers

func (m *ChatMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}

	return &entity.Message{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		Content:       msg.Content,
		IsBot:         msg.IsBot,
		CreatedAt:     msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}

	return &model.Message{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		Content:       msg.Content,
		IsBot:         msg.IsBot,
		CreatedAt:     msg.CreatedAt,
	}
}

func (m *ChatMapper) MessagesToEntities(msgs []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}

// System Log Mappers

func (m *ChatMapper) SystemLogToModel(l *entity.SystemLog) *model.SystemLog {
	if l == nil {
		return nil
	}

	return &model.SystemLog{
		Id:        l.Id,
		Level:     l.Level,
		Module:    l.Module,
		Message:   l.Message,
		Details:   l.Details,
		CreatedAt: l.CreatedAt,
	}
}

package service

import (
	"context"
	"encoding/json"
	"time"

	"twin-chat-be/internal/constant"
	"twin-chat-be/internal/dto"
	"twin-chat-be/internal/entity"
	"twin-chat-be/internal/pkg/logger"
	"twin-chat-be/internal/repository/unitofwork"
	"twin-chat-be/pkg/llm"
	"twin-chat-be/pkg/transcript"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// IChatService defines the chat service interface
type IChatService interface {
	SendMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
}

type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	sessions    ISessionService
	assembler   *transcript.Assembler
	llmProvider llm.LLMProvider
	publisher   message.Publisher
	logger      logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	sessions ISessionService,
	assembler *transcript.Assembler,
	llmProvider llm.LLMProvider,
	publisher message.Publisher,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:  uowFactory,
		sessions:    sessions,
		assembler:   assembler,
		llmProvider: llmProvider,
		publisher:   publisher,
		logger:      sysLogger,
	}
}

// SendMessage runs one chat turn. The user message is committed before the
// external call, so a failed completion leaves the session ending on an
// unanswered user turn. Concurrent turns on one session are not serialized;
// ordering comes solely from created_at at write time.
func (cs *chatService) SendMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, created, err := cs.sessions.GetOrCreate(ctx, request.SessionId, request.UserDetails)
	if err != nil {
		return nil, err
	}

	userMessage := entity.Message{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Content:       request.Message,
		IsBot:         false,
		CreatedAt:     time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}

	history, err := cs.assembler.Load(ctx, session.Id)
	if err != nil {
		return nil, err
	}

	reply, err := cs.llmProvider.Chat(ctx, cs.completionHistory(history))
	if err != nil {
		cs.logger.Error("chat", "completion request failed", map[string]interface{}{
			"session_id": request.SessionId,
			"error":      err.Error(),
		})
		return nil, &CompletionError{Err: err}
	}

	botMessage := entity.Message{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Content:       reply,
		IsBot:         true,
		CreatedAt:     time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, &botMessage); err != nil {
		return nil, err
	}

	cs.publishTurnCompleted(session, &userMessage, &botMessage, created)

	return &dto.SendMessageResponse{
		UserMessage: request.Message,
		BotResponse: reply,
		Timestamp:   time.Now(),
		SessionId:   request.SessionId,
	}, nil
}

// completionHistory prepends the fixed persona to the assembled transcript.
// The transcript already ends with the just-persisted user message.
func (cs *chatService) completionHistory(history []llm.Message) []llm.Message {
	full := make([]llm.Message, 0, len(history)+1)
	full = append(full, llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: constant.HealthAssistantSystemPrompt,
	})
	return append(full, history...)
}

// publishTurnCompleted is best-effort: audit events never fail the turn.
func (cs *chatService) publishTurnCompleted(session *entity.ChatSession, userMsg, botMsg *entity.Message, created bool) {
	event := dto.TurnCompletedEvent{
		SessionId:      session.SessionId,
		ChatSessionId:  session.Id,
		UserMessageId:  userMsg.Id,
		BotMessageId:   botMsg.Id,
		SessionCreated: created,
		CompletedAt:    time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		cs.logger.Warn("chat", "failed to marshal turn event", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := cs.publisher.Publish(constant.ChatTurnCompletedTopic, msg); err != nil {
		cs.logger.Warn("chat", "failed to publish turn event", map[string]interface{}{"error": err.Error()})
	}
}

package transcript

import (
	"context"

	"twin-chat-be/internal/constant"
	"twin-chat-be/internal/entity"
	"twin-chat-be/internal/repository/specification"
	"twin-chat-be/internal/repository/unitofwork"
	"twin-chat-be/pkg/llm"

	"github.com/google/uuid"
)

// Assembler renders a session's recent messages into the role-tagged history
// the completion API expects. Each Load reads fresh from the store, so a
// caller can re-run it after new writes.
type Assembler struct {
	uowFactory unitofwork.RepositoryFactory
	window     int
}

func NewAssembler(uowFactory unitofwork.RepositoryFactory, window int) *Assembler {
	if window <= 0 {
		window = constant.ChatHistoryWindow
	}
	return &Assembler{
		uowFactory: uowFactory,
		window:     window,
	}
}

// Load returns up to window messages in chronological order. A session with
// fewer messages yields all of them; an empty session yields an empty slice.
func (a *Assembler) Load(ctx context.Context, chatSessionId uuid.UUID) ([]llm.Message, error) {
	uow := a.uowFactory.NewUnitOfWork(ctx)

	// Newest-first query bounded by the window, then reversed, so the window
	// keeps the most recent turns rather than the oldest.
	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: chatSessionId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Limit: a.window},
	)
	if err != nil {
		return nil, err
	}

	history := make([]llm.Message, len(messages))
	for i, msg := range messages {
		history[len(messages)-1-i] = Render(msg)
	}
	return history, nil
}

// Render maps one stored message onto its transcript turn.
func Render(msg *entity.Message) llm.Message {
	role := constant.ChatMessageRoleUser
	if msg.IsBot {
		role = constant.ChatMessageRoleModel
	}
	return llm.Message{
		Role:    role,
		Content: msg.Content,
	}
}

package transcript

import (
	"context"
	"fmt"
	"testing"
	"time"

	"twin-chat-be/internal/constant"
	"twin-chat-be/internal/entity"
	"twin-chat-be/internal/repository/contract"
	"twin-chat-be/internal/repository/specification"
	"twin-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMessageRepository struct {
	messages []*entity.Message
}

func (r *stubMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	r.messages = append(r.messages, message)
	return nil
}

func (r *stubMessageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	var filter *uuid.UUID
	desc := false
	limit := -1
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByChatSessionID:
			id := s.ChatSessionID
			filter = &id
		case specification.OrderBy:
			desc = s.Desc
		case specification.Limit:
			limit = s.Limit
		}
	}

	var matched []*entity.Message
	for _, m := range r.messages {
		if filter == nil || m.ChatSessionId == *filter {
			matched = append(matched, m)
		}
	}
	if desc {
		reversed := make([]*entity.Message, len(matched))
		for i, m := range matched {
			reversed[len(matched)-1-i] = m
		}
		matched = reversed
	}
	if limit >= 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *stubMessageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.messages)), nil
}

type stubUnitOfWork struct {
	messages *stubMessageRepository
}

func (u *stubUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *stubUnitOfWork) Commit() error                   { return nil }
func (u *stubUnitOfWork) Rollback() error                 { return nil }
func (u *stubUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return nil
}
func (u *stubUnitOfWork) MessageRepository() contract.MessageRepository {
	return u.messages
}
func (u *stubUnitOfWork) SystemLogRepository() contract.SystemLogRepository {
	return nil
}

type stubFactory struct {
	uow *stubUnitOfWork
}

func (f *stubFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newAssemblerUnderTest() (*Assembler, *stubMessageRepository) {
	repo := &stubMessageRepository{}
	factory := &stubFactory{uow: &stubUnitOfWork{messages: repo}}
	return NewAssembler(factory, constant.ChatHistoryWindow), repo
}

func seedMessages(repo *stubMessageRepository, sessionId uuid.UUID, n int) {
	base := time.Now().Add(-time.Hour)
	for i := 0; i < n; i++ {
		repo.messages = append(repo.messages, &entity.Message{
			Id:            uuid.New(),
			ChatSessionId: sessionId,
			Content:       fmt.Sprintf("msg-%d", i),
			IsBot:         i%2 == 1,
			CreatedAt:     base.Add(time.Duration(i) * time.Second),
		})
	}
}

func TestLoadEmptySession(t *testing.T) {
	assembler, _ := newAssemblerUnderTest()

	history, err := assembler.Load(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestLoadReturnsAllWhenUnderWindow(t *testing.T) {
	assembler, repo := newAssemblerUnderTest()
	sessionId := uuid.New()
	seedMessages(repo, sessionId, 5)

	history, err := assembler.Load(context.Background(), sessionId)
	require.NoError(t, err)
	require.Len(t, history, 5)
	assert.Equal(t, "msg-0", history[0].Content)
	assert.Equal(t, "msg-4", history[4].Content)
}

func TestLoadKeepsMostRecentWindow(t *testing.T) {
	assembler, repo := newAssemblerUnderTest()
	sessionId := uuid.New()
	seedMessages(repo, sessionId, 25)

	history, err := assembler.Load(context.Background(), sessionId)
	require.NoError(t, err)
	require.Len(t, history, constant.ChatHistoryWindow)
	// The 5 oldest fall off; order stays chronological
	assert.Equal(t, "msg-5", history[0].Content)
	assert.Equal(t, "msg-24", history[len(history)-1].Content)
}

func TestLoadFiltersBySession(t *testing.T) {
	assembler, repo := newAssemblerUnderTest()
	mine := uuid.New()
	other := uuid.New()
	seedMessages(repo, mine, 3)
	seedMessages(repo, other, 4)

	history, err := assembler.Load(context.Background(), mine)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestRenderRoleMapping(t *testing.T) {
	user := Render(&entity.Message{Content: "hi", IsBot: false})
	assert.Equal(t, constant.ChatMessageRoleUser, user.Role)

	bot := Render(&entity.Message{Content: "hello", IsBot: true})
	assert.Equal(t, constant.ChatMessageRoleModel, bot.Role)
	assert.Equal(t, "hello", bot.Content)
}

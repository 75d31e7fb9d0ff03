package service

import (
	"context"
	"sort"
	"sync"

	"twin-chat-be/internal/entity"
	"twin-chat-be/internal/repository/contract"
	"twin-chat-be/internal/repository/specification"
	"twin-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repositories interpreting the same specifications the gorm
// implementations receive, so services run unmodified against them.

type fakeChatSessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*entity.ChatSession // keyed by external session_id
}

func newFakeChatSessionRepository() *fakeChatSessionRepository {
	return &fakeChatSessionRepository{sessions: make(map[string]*entity.ChatSession)}
}

func (r *fakeChatSessionRepository) Create(ctx context.Context, session *entity.ChatSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *session
	r.sessions[session.SessionId] = &stored
	return nil
}

func (r *fakeChatSessionRepository) Update(ctx context.Context, session *entity.ChatSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *session
	r.sessions[session.SessionId] = &stored
	return nil
}

func (r *fakeChatSessionRepository) GetOrCreate(ctx context.Context, session *entity.ChatSession) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.sessions[session.SessionId]; ok {
		*session = *existing
		return false, nil
	}
	stored := *session
	r.sessions[session.SessionId] = &stored
	return true, nil
}

func (r *fakeChatSessionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.BySessionID:
			if existing, ok := r.sessions[s.SessionID]; ok {
				found := *existing
				return &found, nil
			}
			return nil, nil
		case specification.ByID:
			for _, existing := range r.sessions {
				if existing.Id == s.ID {
					found := *existing
					return &found, nil
				}
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *fakeChatSessionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.sessions)), nil
}

type storedMessage struct {
	entity.Message
	seq int
}

type fakeMessageRepository struct {
	mu       sync.Mutex
	messages []storedMessage
	nextSeq  int
}

func newFakeMessageRepository() *fakeMessageRepository {
	return &fakeMessageRepository{}
}

func (r *fakeMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, storedMessage{Message: *message, seq: r.nextSeq})
	r.nextSeq++
	return nil
}

func (r *fakeMessageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sessionFilter *uuid.UUID
	desc := false
	limit := -1
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByChatSessionID:
			id := s.ChatSessionID
			sessionFilter = &id
		case specification.OrderBy:
			desc = s.Desc
		case specification.Limit:
			limit = s.Limit
		}
	}

	var matched []storedMessage
	for _, m := range r.messages {
		if sessionFilter != nil && m.ChatSessionId != *sessionFilter {
			continue
		}
		matched = append(matched, m)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			if desc {
				return matched[i].seq > matched[j].seq
			}
			return matched[i].seq < matched[j].seq
		}
		if desc {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	if limit >= 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	result := make([]*entity.Message, len(matched))
	for i := range matched {
		msg := matched[i].Message
		result[i] = &msg
	}
	return result, nil
}

func (r *fakeMessageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	msgs, err := r.FindAll(ctx, specs...)
	return int64(len(msgs)), err
}

type fakeSystemLogRepository struct {
	mu   sync.Mutex
	logs []*entity.SystemLog
}

func newFakeSystemLogRepository() *fakeSystemLogRepository {
	return &fakeSystemLogRepository{}
}

func (r *fakeSystemLogRepository) Create(ctx context.Context, log *entity.SystemLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *log
	r.logs = append(r.logs, &stored)
	return nil
}

func (r *fakeSystemLogRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.logs)
}

type fakeUnitOfWork struct {
	sessions   *fakeChatSessionRepository
	messages   *fakeMessageRepository
	systemLogs *fakeSystemLogRepository
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return u.sessions
}

func (u *fakeUnitOfWork) MessageRepository() contract.MessageRepository {
	return u.messages
}

func (u *fakeUnitOfWork) SystemLogRepository() contract.SystemLogRepository {
	return u.systemLogs
}

type fakeRepositoryFactory struct {
	uow *fakeUnitOfWork
}

func newFakeRepositoryFactory() *fakeRepositoryFactory {
	return &fakeRepositoryFactory{
		uow: &fakeUnitOfWork{
			sessions:   newFakeChatSessionRepository(),
			messages:   newFakeMessageRepository(),
			systemLogs: newFakeSystemLogRepository(),
		},
	}
}

func (f *fakeRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

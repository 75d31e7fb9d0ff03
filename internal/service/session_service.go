package service

import (
	"context"
	"time"

	"twin-chat-be/internal/dto"
	"twin-chat-be/internal/entity"
	"twin-chat-be/internal/repository/memory"
	"twin-chat-be/internal/repository/specification"
	"twin-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// ISessionService defines the session service interface
type ISessionService interface {
	CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	GetSession(ctx context.Context, sessionId string) (*dto.SessionResponse, error)
	UpdateUserDetails(ctx context.Context, request *dto.UpdateUserDetailsRequest) (*dto.SessionResponse, error)
	// GetOrCreate resolves the session for the message flow, creating it on
	// first contact and patching any newly supplied profile fields onto an
	// existing one.
	GetOrCreate(ctx context.Context, sessionId string, details *dto.UserDetailsDTO) (*entity.ChatSession, bool, error)
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.SessionCache
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory, cache *memory.SessionCache) ISessionService {
	return &sessionService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := entity.ChatSession{
		Id:        uuid.New(),
		SessionId: uuid.NewString(),
		CreatedAt: time.Now(),
	}
	applyUserDetails(&session, request.UserDetails)

	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	s.cache.Save(&session)
	return s.toSessionResponse(ctx, &session)
}

func (s *sessionService) GetSession(ctx context.Context, sessionId string) (*dto.SessionResponse, error) {
	session, err := s.resolve(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	return s.toSessionResponse(ctx, session)
}

func (s *sessionService) UpdateUserDetails(ctx context.Context, request *dto.UpdateUserDetailsRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.BySessionID{SessionID: request.SessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	applyUserDetails(session, request.UserDetails)
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	s.cache.Save(session)
	return s.toSessionResponse(ctx, session)
}

func (s *sessionService) GetOrCreate(ctx context.Context, sessionId string, details *dto.UserDetailsDTO) (*entity.ChatSession, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := entity.ChatSession{
		Id:        uuid.New(),
		SessionId: sessionId,
		CreatedAt: time.Now(),
	}
	applyUserDetails(&session, details)

	created, err := uow.ChatSessionRepository().GetOrCreate(ctx, &session)
	if err != nil {
		return nil, false, err
	}

	// Existing session: the insert lost the values from the request, so any
	// supplied fields are patched onto the stored row.
	if !created && details != nil {
		applyUserDetails(&session, details)
		if err := uow.ChatSessionRepository().Update(ctx, &session); err != nil {
			return nil, false, err
		}
	}

	s.cache.Save(&session)
	return &session, created, nil
}

// resolve finds the session row by external identifier, serving repeat
// lookups from the in-memory cache. Messages are never cached.
func (s *sessionService) resolve(ctx context.Context, sessionId string) (*entity.ChatSession, error) {
	if cached, found := s.cache.Get(sessionId); found {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.BySessionID{SessionID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	s.cache.Save(session)
	return session, nil
}

func (s *sessionService) toSessionResponse(ctx context.Context, session *entity.ChatSession) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	messageDTOs := make([]*dto.MessageResponse, len(messages))
	for i, msg := range messages {
		messageDTOs[i] = &dto.MessageResponse{
			Id:        msg.Id,
			Content:   msg.Content,
			IsBot:     msg.IsBot,
			CreatedAt: msg.CreatedAt,
		}
	}

	return &dto.SessionResponse{
		Id:        session.Id,
		SessionId: session.SessionId,
		UserName:  session.UserName,
		UserEmail: session.UserEmail,
		UserPhone: session.UserPhone,
		Messages:  messageDTOs,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}, nil
}

// applyUserDetails patches only the fields present, leaving others untouched.
func applyUserDetails(session *entity.ChatSession, details *dto.UserDetailsDTO) {
	if details == nil {
		return
	}
	if details.Name != nil {
		session.UserName = details.Name
	}
	if details.Email != nil {
		session.UserEmail = details.Email
	}
	if details.Phone != nil {
		session.UserPhone = details.Phone
	}
}

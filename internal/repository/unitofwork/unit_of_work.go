package unitofwork

import (
	"context"

	"twin-chat-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	MessageRepository() contract.MessageRepository
	SystemLogRepository() contract.SystemLogRepository
}

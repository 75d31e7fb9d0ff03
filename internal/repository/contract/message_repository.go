package contract

import (
	"context"

	"twin-chat-be/internal/entity"
	"twin-chat-be/internal/repository/specification"
)

// MessageRepository has no update or delete: messages are immutable once
// created.
type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

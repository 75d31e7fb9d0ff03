package contract

import (
	"context"

	"twin-chat-be/internal/entity"
	"twin-chat-be/internal/repository/specification"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	Update(ctx context.Context, session *entity.ChatSession) error
	// GetOrCreate inserts the session if its session_id is unseen, otherwise
	// loads the existing row into session. It reports whether a new row was
	// created. The insert is conflict-tolerant: concurrent calls with the
	// same session_id never produce duplicates.
	GetOrCreate(ctx context.Context, session *entity.ChatSession) (bool, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

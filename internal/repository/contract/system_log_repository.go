package contract

import (
	"context"

	"twin-chat-be/internal/entity"
)

type SystemLogRepository interface {
	Create(ctx context.Context, log *entity.SystemLog) error
}

package implementation

import (
	"context"

	"twin-chat-be/internal/entity"
	"twin-chat-be/internal/mapper"
	"twin-chat-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SystemLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewSystemLogRepository(db *gorm.DB) contract.SystemLogRepository {
	return &SystemLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *SystemLogRepositoryImpl) Create(ctx context.Context, log *entity.SystemLog) error {
	return r.db.WithContext(ctx).Create(r.mapper.SystemLogToModel(log)).Error
}

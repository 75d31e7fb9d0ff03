package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId string    `gorm:"type:varchar(255);not null;uniqueIndex"` // Opaque external identifier
	UserName  *string   `gorm:"type:varchar(255)"`
	UserEmail *string   `gorm:"type:varchar(255)"`
	UserPhone *string   `gorm:"type:varchar(20)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

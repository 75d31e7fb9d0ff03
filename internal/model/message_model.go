package model

import (
	"time"

	"github.com/google/uuid"
)

// Message rows are immutable once written. There is no update or delete path;
// removal only happens through the session cascade.
type Message struct {
	Id            uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatSessionId uuid.UUID   `gorm:"type:uuid;not null;index"`
	ChatSession   ChatSession `gorm:"foreignKey:ChatSessionId;constraint:OnDelete:CASCADE"`
	Content       string      `gorm:"type:text;not null"`
	IsBot         bool        `gorm:"not null;default:false"`
	CreatedAt     time.Time   `gorm:"autoCreateTime;index"` // Conversation sort key
}

func (Message) TableName() string {
	return "messages"
}

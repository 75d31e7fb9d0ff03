package entity

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Content       string
	IsBot         bool
	CreatedAt     time.Time
}

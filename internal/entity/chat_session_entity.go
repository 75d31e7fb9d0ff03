package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID
	SessionId string
	UserName  *string
	UserEmail *string
	UserPhone *string
	CreatedAt time.Time
	UpdatedAt time.Time
	Messages  []*Message
}

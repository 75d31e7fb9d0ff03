package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserDetailsDTO is the optional profile payload. Each field patches
// independently; absent fields leave the stored value untouched.
type UserDetailsDTO struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type CreateSessionRequest struct {
	UserDetails *UserDetailsDTO `json:"user_details"`
}

type UpdateUserDetailsRequest struct {
	SessionId   string          `json:"session_id" validate:"required,max=255"`
	UserDetails *UserDetailsDTO `json:"user_details" validate:"required"`
}

type MessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	IsBot     bool      `json:"is_bot"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionResponse struct {
	Id        uuid.UUID          `json:"id"`
	SessionId string             `json:"session_id"`
	UserName  *string            `json:"user_name"`
	UserEmail *string            `json:"user_email"`
	UserPhone *string            `json:"user_phone"`
	Messages  []*MessageResponse `json:"messages"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type SendMessageRequest struct {
	SessionId   string          `json:"session_id" validate:"required,max=255"`
	Message     string          `json:"message" validate:"required,max=5000"`
	UserDetails *UserDetailsDTO `json:"user_details,omitempty"`
}

type SendMessageResponse struct {
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Timestamp   time.Time `json:"timestamp"`
	SessionId   string    `json:"session_id"`
}

// TurnCompletedEvent is published on the in-process bus after a bot reply has
// been persisted.
type TurnCompletedEvent struct {
	SessionId      string    `json:"session_id"`
	ChatSessionId  uuid.UUID `json:"chat_session_id"`
	UserMessageId  uuid.UUID `json:"user_message_id"`
	BotMessageId   uuid.UUID `json:"bot_message_id"`
	SessionCreated bool      `json:"session_created"`
	CompletedAt    time.Time `json:"completed_at"`
}

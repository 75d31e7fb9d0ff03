package controller

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"twin-chat-be/internal/dto"
	"twin-chat-be/internal/pkg/serverutils"
	"twin-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatService struct {
	res     *dto.SendMessageResponse
	err     error
	lastReq *dto.SendMessageRequest
}

func (s *stubChatService) SendMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	s.lastReq = request
	return s.res, s.err
}

func newChatApp(svc service.IChatService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewChatController(svc).RegisterRoutes(app)
	return app
}

func TestSendMessageOk(t *testing.T) {
	svc := &stubChatService{res: &dto.SendMessageResponse{
		UserMessage: "hello",
		BotResponse: "hi there",
		Timestamp:   time.Now(),
		SessionId:   "s1",
	}}
	app := newChatApp(svc)

	req := httptest.NewRequest("POST", "/message", strings.NewReader(`{"session_id": "s1", "message": "hello"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "hello", body["user_message"])
	assert.Equal(t, "hi there", body["bot_response"])
	assert.Equal(t, "s1", body["session_id"])

	require.NotNil(t, svc.lastReq)
	assert.Equal(t, "s1", svc.lastReq.SessionId)
}

func TestSendMessageMissingFields(t *testing.T) {
	app := newChatApp(&stubChatService{})

	req := httptest.NewRequest("POST", "/message", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Contains(t, body["error"], "session_id is required")
	assert.Contains(t, body["error"], "message is required")
}

func TestSendMessageTooLong(t *testing.T) {
	svc := &stubChatService{}
	app := newChatApp(svc)

	payload := `{"session_id": "s1", "message": "` + strings.Repeat("a", 5001) + `"}`
	req := httptest.NewRequest("POST", "/message", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Contains(t, body["error"], "message must not exceed 5000 characters")
	assert.Nil(t, svc.lastReq)
}

func TestSendMessageCompletionFailure(t *testing.T) {
	svc := &stubChatService{err: &service.CompletionError{Err: errors.New("quota exceeded")}}
	app := newChatApp(svc)

	req := httptest.NewRequest("POST", "/message", strings.NewReader(`{"session_id": "s1", "message": "hello"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Failed to get response from Gemini: quota exceeded", body["error"])
}

func TestSendMessageSessionNotFound(t *testing.T) {
	app := newChatApp(&stubChatService{err: service.ErrSessionNotFound})

	req := httptest.NewRequest("POST", "/message", strings.NewReader(`{"session_id": "s1", "message": "hello"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Session not found", body["error"])
}

package serverutils

import (
	"strings"
	"testing"

	"twin-chat-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequestOk(t *testing.T) {
	req := dto.SendMessageRequest{SessionId: "s1", Message: "hello"}
	assert.NoError(t, ValidateRequest(req))
}

func TestValidateRequestRequiredFields(t *testing.T) {
	err := ValidateRequest(dto.SendMessageRequest{})
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "session_id is required")
	assert.Contains(t, validationErr.Message, "message is required")
}

func TestValidateRequestMaxLength(t *testing.T) {
	req := dto.SendMessageRequest{SessionId: "s1", Message: strings.Repeat("a", 5001)}
	err := ValidateRequest(req)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "message must not exceed 5000 characters", validationErr.Message)
}

func TestValidateRequestNestedEmail(t *testing.T) {
	bad := "not-an-email"
	req := dto.UpdateUserDetailsRequest{
		SessionId:   "s1",
		UserDetails: &dto.UserDetailsDTO{Email: &bad},
	}
	err := ValidateRequest(req)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "email must be a valid email address")
}

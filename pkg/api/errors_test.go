package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorEnvelope(t *testing.T) {
	e := InvalidRequestError("max_tokens must be 4,096 or less", WithParam("max_tokens"))
	assert.Equal(t, http.StatusBadRequest, e.Status)

	out, err := json.Marshal(e.Envelope())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"message":"max_tokens must be 4,096 or less","type":"invalid_request_error","param":"max_tokens","code":null}}`, string(out))
}

func TestAuthenticationError(t *testing.T) {
	e := AuthenticationError("bad key", WithCode(CodeInvalidAPIKey))
	assert.Equal(t, http.StatusUnauthorized, e.Status)

	out, err := json.Marshal(e.Envelope())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"message":"bad key","type":"invalid_request_error","param":null,"code":"invalid_api_key"}}`, string(out))
}

func TestInternalError_HidesCause(t *testing.T) {
	cause := errors.New("index out of range")
	e := InternalError(cause)

	assert.Equal(t, http.StatusInternalServerError, e.Status)
	assert.Equal(t, TypeServer, e.Type)
	assert.NotContains(t, e.Message, "index")
	assert.ErrorIs(t, e, cause)

	out, err := json.Marshal(e.Envelope())
	require.NoError(t, err)
	assert.NotContains(t, string(out), "index")
}

func TestWithParam_EmptyStaysNull(t *testing.T) {
	e := InvalidRequestError("bad body", WithParam(""))
	assert.Nil(t, e.Param)
}

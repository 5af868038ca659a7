package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/nulzo/openai-mock/internal/auth"
	"github.com/nulzo/openai-mock/pkg/api"
)

const (
	missingKeyMessage = "You didn't provide an API key. You need to provide your API key in an " +
		"Authorization header using Bearer auth (i.e. Authorization: Bearer YOUR_KEY). " +
		"You can obtain an API key from https://platform.openai.com/account/api-keys."
	malformedMessage = "You must provide the API key using Bearer authentication " +
		"(i.e. Authorization: Bearer YOUR_KEY)."
	wrongKeyMessage = "Incorrect API key provided: ***. You can find your API key at " +
		"https://platform.openai.com/account/api-keys."
)

// Auth rejects requests whose Authorization header does not carry the
// configured key. Nothing downstream runs for a rejected request.
func Auth(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch gate.Classify(c.GetHeader("Authorization")) {
		case auth.Authenticated:
			c.Next()
			return
		case auth.MissingHeader:
			_ = c.Error(api.AuthenticationError(missingKeyMessage))
		case auth.MalformedScheme:
			_ = c.Error(api.AuthenticationError(malformedMessage))
		default:
			_ = c.Error(api.AuthenticationError(wrongKeyMessage, api.WithCode(api.CodeInvalidAPIKey)))
		}
		c.Abort()
	}
}

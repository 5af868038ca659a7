package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/openai-mock/pkg/api"
	"go.uber.org/zap"
)

// ErrorHandler renders the last error attached by a handler as an OpenAI
// error envelope.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var apiErr *api.Error
		if !errors.As(err, &apiErr) {
			apiErr = api.InternalError(err)
		}

		if apiErr.Log != nil {
			logger.Error("internal error",
				zap.String("path", c.Request.URL.Path),
				zap.Error(apiErr.Log),
			)
		}

		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(apiErr.Status, apiErr.Envelope())
	}
}

// Recovered renders a recovered panic as a generic 500 envelope. It is used
// as the gin-contrib/zap recovery handler, which has already logged the panic.
func Recovered(c *gin.Context, _ any) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, api.InternalError(nil).Envelope())
}

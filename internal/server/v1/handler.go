// Package v1 holds the handlers for the OpenAI-compatible endpoints.
package v1

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/openai-mock/internal/mock"
	"github.com/nulzo/openai-mock/internal/platform/metrics"
	"github.com/nulzo/openai-mock/internal/validation"
	"github.com/nulzo/openai-mock/pkg/api"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Deps are the shared, immutable collaborators of the synthesis handlers.
type Deps struct {
	Synth     *mock.Synthesizer
	Validator *validation.Validator
	Metrics   *metrics.Collector
	Tracer    trace.Tracer
}

// invalidRequest maps a validation failure onto a 400 envelope.
func invalidRequest(err error) *api.Error {
	var ve *validation.ValidationError
	if errors.As(err, &ve) {
		return api.InvalidRequestError(ve.Message, api.WithParam(ve.Field))
	}
	return api.InternalError(err)
}

// bindError maps a body decoding failure onto a 400 envelope.
func bindError(v *validation.Validator, err error) *api.Error {
	ve := v.ParseError(err)
	return api.InvalidRequestError(ve.Message, api.WithParam(ve.Field))
}

// synthesize runs fn inside a child span named op.
func synthesize[T any](c *gin.Context, tracer trace.Tracer, op, model string, choices int, fn func() (T, error)) (T, error) {
	_, span := tracer.Start(c.Request.Context(), op, trace.WithAttributes(
		attribute.String("gen_ai.request.model", model),
		attribute.Int("mock.choices", choices),
	))
	defer span.End()

	out, err := fn()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "synthesis failed")
	}
	return out, err
}

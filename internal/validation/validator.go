// Package validation checks decoded requests against each endpoint's
// parameter contract and reports the first violated field.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/nulzo/openai-mock/pkg/api"
)

// ValidationError names the first offending field. Field is empty when the
// body could not be decoded at all.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const bodyMessage = "We could not parse the JSON body of your request. " +
	"The OpenAI API expects a JSON payload, but what was sent was not valid JSON."

// Validator wraps a configured validator engine and its English translator.
// It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New configures the validator engine.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// every union variant is validated in its normalized form
	v.RegisterCustomTypeFunc(unionValues,
		api.PromptInput{}, api.StopSequences{}, api.EmbeddingInput{}, api.Content{})

	_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	v.RegisterStructValidation(completionRules, api.CompletionRequest{})
	v.RegisterStructValidation(chatRules, api.ChatCompletionRequest{})
	v.RegisterStructValidation(messageRules, api.ChatMessage{})

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	val := &Validator{validate: v, trans: trans}
	for tag, text := range customMessages {
		val.registerTranslation(tag, text)
	}
	return val
}

var customMessages = map[string]string{
	"nonblank":              "{0} must not be empty",
	"best_of":               "best_of must be greater than or equal to n",
	"content_required":      "{0} is required for {1} messages",
	"content_or_tool_calls": "assistant messages must have either content or tool_calls",
	"tool_choice":           "{0} must be one of [none, auto, required] or a function reference",
	"tool_choice_tools":     "{0} is only allowed when tools are specified",
	"tool_choice_unknown":   "{0} references unknown function '{1}'",
}

func (v *Validator) registerTranslation(tag, text string) {
	_ = v.validate.RegisterTranslation(tag, v.trans,
		func(t ut.Translator) error {
			return t.Add(tag, text, true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, err := t.T(tag, fe.Field(), fe.Param())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
}

func unionValues(field reflect.Value) any {
	switch u := field.Interface().(type) {
	case api.PromptInput:
		return u.Values()
	case api.StopSequences:
		return u.Values()
	case api.EmbeddingInput:
		return u.Units()
	case api.Content:
		return u.String()
	}
	return nil
}

// Completion validates a legacy completion request.
func (v *Validator) Completion(req *api.CompletionRequest) error {
	err := v.first(req)
	if err != nil && !req.Prompt.IsList() {
		err.Field = collapseIndex(err.Field, "prompt")
	}
	return asError(err)
}

// Chat validates a chat completion request.
func (v *Validator) Chat(req *api.ChatCompletionRequest) error {
	return asError(v.first(req))
}

// Embedding validates an embedding request.
func (v *Validator) Embedding(req *api.EmbeddingRequest) error {
	err := v.first(req)
	if err != nil && !req.Input.IsList() {
		err.Field = collapseIndex(err.Field, "input")
	}
	return asError(err)
}

func asError(err *ValidationError) error {
	if err == nil {
		return nil
	}
	return err
}

// first runs the engine and keeps only the first violation. Field errors are
// reported in declaration order, struct-level rules after them.
func (v *Validator) first(req any) *ValidationError {
	if err := v.validate.Struct(req); err != nil {
		return v.ParseError(err)
	}
	return nil
}

// ParseError converts decoding and validation failures into a single
// field-level error.
func (v *Validator) ParseError(err error) *ValidationError {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return v.fromFieldError(validationErrors[0])
	}

	var union *api.UnionError
	if errors.As(err, &union) {
		return &ValidationError{Field: union.Field, Message: union.Error()}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &ValidationError{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("Invalid type for '%s': expected %s, but got %s.", typeErr.Field, typeErr.Type, typeErr.Value),
		}
	}

	if errors.Is(err, io.EOF) {
		return &ValidationError{Message: "The request body must not be empty."}
	}

	return &ValidationError{Message: bodyMessage}
}

func (v *Validator) fromFieldError(fe validator.FieldError) *ValidationError {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i != -1 {
		field = field[i+1:]
	}

	msg := fe.Translate(v.trans)
	if fe.Tag() == "oneof" {
		msg = fmt.Sprintf("%s must be one of [%s]", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	}

	return &ValidationError{Field: field, Message: msg}
}

// collapseIndex reports "prompt[0]" as "prompt" when the union was a single
// value rather than a list.
func collapseIndex(field, base string) string {
	if strings.HasPrefix(field, base+"[0]") {
		return base + strings.TrimPrefix(field, base+"[0]")
	}
	return field
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testKey = "sk-mock-openai-api-key-12345"

func TestGate_Classify(t *testing.T) {
	gate := NewGate(testKey)

	tests := []struct {
		name   string
		header string
		want   Result
	}{
		{"no header", "", MissingHeader},
		{"token scheme", "Token xxx", MalformedScheme},
		{"lowercase scheme", "bearer " + testKey, MalformedScheme},
		{"scheme only", "Bearer", MalformedScheme},
		{"scheme with empty token", "Bearer ", MalformedScheme},
		{"double space", "Bearer  " + testKey, MalformedScheme},
		{"tab separator", "Bearer\t" + testKey, MalformedScheme},
		{"wrong key", "Bearer wrong-key", WrongKey},
		{"key prefix", "Bearer " + testKey[:10], WrongKey},
		{"key with suffix", "Bearer " + testKey + "x", WrongKey},
		{"configured key", "Bearer " + testKey, Authenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.Classify(tt.header))
		})
	}
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "authenticated", Authenticated.String())
	assert.Equal(t, "missing_header", MissingHeader.String())
	assert.Equal(t, "malformed_scheme", MalformedScheme.String())
	assert.Equal(t, "wrong_key", WrongKey.String())
}

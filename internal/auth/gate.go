// Package auth implements the static bearer-key gate in front of the
// protected endpoints.
package auth

import (
	"crypto/subtle"
	"strings"
)

// Result classifies an Authorization header.
type Result int

const (
	Authenticated Result = iota
	MissingHeader
	MalformedScheme
	WrongKey
)

func (r Result) String() string {
	switch r {
	case Authenticated:
		return "authenticated"
	case MissingHeader:
		return "missing_header"
	case MalformedScheme:
		return "malformed_scheme"
	case WrongKey:
		return "wrong_key"
	}
	return "unknown"
}

const scheme = "Bearer "

// Gate compares presented credentials against the configured key.
type Gate struct {
	key []byte
}

func NewGate(apiKey string) *Gate {
	return &Gate{key: []byte(apiKey)}
}

// Classify accepts exactly "Bearer <key>": case-sensitive scheme, a single
// space, then the key. The key comparison takes constant time.
func (g *Gate) Classify(header string) Result {
	if header == "" {
		return MissingHeader
	}

	token, ok := strings.CutPrefix(header, scheme)
	if !ok || token == "" || strings.HasPrefix(token, " ") {
		return MalformedScheme
	}

	if subtle.ConstantTimeCompare([]byte(token), g.key) != 1 {
		return WrongKey
	}
	return Authenticated
}

package logger

import (
	"regexp"
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	ansiReset  = "\033[0m"
	ansiDim    = "\033[2m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
	ansiPurple = "\033[35m"
)

// keys, string values, then literals and numbers
var jsonToken = regexp.MustCompile(`("(\\u[a-zA-Z0-9]{4}|\\[^u]|[^\\"])*"(\s*:)?|\b(true|false|null)\b|-?\d+(?:\.\d*)?(?:[eE][+\-]?\d+)?)`)

var bufferPool = buffer.NewPool()

// highlightEncoder is a console encoder that colours the trailing JSON
// fields blob of each line.
type highlightEncoder struct {
	zapcore.Encoder
}

func newHighlightEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	return &highlightEncoder{Encoder: zapcore.NewConsoleEncoder(cfg)}
}

func (h *highlightEncoder) Clone() zapcore.Encoder {
	return &highlightEncoder{Encoder: h.Encoder.Clone()}
}

func (h *highlightEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	buf, err := h.Encoder.EncodeEntry(ent, fields)
	if err != nil {
		return nil, err
	}

	line := buf.String()
	// the console encoder separates the fields blob with a tab
	split := strings.Index(line, "\t{")
	if split == -1 {
		return buf, nil
	}

	out := bufferPool.Get()
	out.AppendString(line[:split+1])
	out.AppendString(highlightJSON(line[split+1:]))
	buf.Free()
	return out, nil
}

func highlightJSON(s string) string {
	return jsonToken.ReplaceAllStringFunc(s, func(token string) string {
		switch {
		case strings.HasSuffix(token, ":"):
			return ansiBlue + token[:len(token)-1] + ansiReset + ":"
		case strings.HasPrefix(token, `"`):
			return ansiGreen + token + ansiReset
		case token == "true" || token == "false":
			return ansiYellow + token + ansiReset
		case token == "null":
			return ansiDim + token + ansiReset
		default:
			return ansiPurple + token + ansiReset
		}
	})
}

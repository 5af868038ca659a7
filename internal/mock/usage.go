package mock

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const charsPerToken = 4

// UsageCalculator approximates token counts without a tokenizer. An estimate
// is the larger of ceil(runes/4) and the word count; blank text is 0.
type UsageCalculator struct{}

func tokens(runes, words int) int {
	return max((runes+charsPerToken-1)/charsPerToken, words)
}

// Estimate returns the approximate token count of text.
func (UsageCalculator) Estimate(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return tokens(utf8.RuneCountInString(text), len(strings.Fields(text)))
}

// Truncate cuts text at a word boundary so that Estimate(result) <= maxTokens.
// It reports whether anything was cut. maxTokens <= 0 disables the cap.
func (u UsageCalculator) Truncate(text string, maxTokens int) (string, bool) {
	if maxTokens <= 0 || u.Estimate(text) <= maxTokens {
		return text, false
	}

	cut, runes, words, inWord := 0, 0, 0, false
	for i, r := range text {
		space := unicode.IsSpace(r)
		if space && inWord {
			if tokens(runes, words) > maxTokens {
				break
			}
			cut = i
		}
		if !space && !inWord {
			words++
		}
		inWord = !space
		runes++
	}

	if cut == 0 {
		// a single word already exceeds the cap
		return truncateRunes(text, maxTokens*charsPerToken), true
	}
	return text[:cut], true
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

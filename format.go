package namecast

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// truncateTolerance is how far back from the length cut a token boundary
// may be and still be preferred over a mid-token cut.
const truncateTolerance = 5

// FormatPhrase casts a translated phrase into the given naming convention
// and truncates it to maxLength runes (0 = unlimited).
//
// The phrase is normalized into lowercase word tokens split on whitespace
// and punctuation before the convention is applied.
func FormatPhrase(phrase string, format OutputFormat, maxLength int) string {
	tokens := tokenize(phrase)
	if len(tokens) == 0 {
		return ""
	}

	var out string
	switch format {
	case FormatKebab:
		out = strings.Join(tokens, "-")
	case FormatSnake:
		out = strings.Join(tokens, "_")
	case FormatCamel:
		parts := make([]string, len(tokens))
		parts[0] = tokens[0]
		for i := 1; i < len(tokens); i++ {
			parts[i] = capitalize(tokens[i])
		}
		out = strings.Join(parts, "")
	case FormatPascal:
		parts := make([]string, len(tokens))
		for i, tok := range tokens {
			parts[i] = capitalize(tok)
		}
		out = strings.Join(parts, "")
	case FormatLower:
		out = strings.Join(tokens, "")
	case FormatUpper:
		out = strings.ToUpper(strings.Join(tokens, "_"))
	default:
		out = strings.Join(tokens, "-")
	}

	return truncate(out, maxLength)
}

// tokenize splits a phrase into lowercase word tokens on whitespace and
// punctuation boundaries.
func tokenize(phrase string) []string {
	lowered := strings.ToLower(strings.TrimSpace(phrase))
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// capitalize upper-cases the first letter of a lowercase token.
func capitalize(token string) string {
	return cases.Title(language.English).String(token)
}

// truncate cuts s to max runes, preferring a token boundary near the cut
// and never leaving a trailing separator.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	cut := string(runes[:max])
	if idx := strings.LastIndexAny(cut, "-_"); idx >= max-truncateTolerance && idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, "-_")
}

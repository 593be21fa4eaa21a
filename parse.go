package namecast

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Outcome is the parsed form of an engine reply. Translations holds the
// recovered mapping from original text to raw English translation; Missing
// lists requested texts the reply did not cover.
type Outcome struct {
	Translations map[string]string
	Missing      []string
}

// Partial reports whether the reply covered only part of the request.
func (o *Outcome) Partial() bool {
	return len(o.Missing) > 0
}

// ParseReply extracts the translation mapping from a raw engine reply.
//
// Engines are chatty: the JSON object may be wrapped in Markdown fences,
// surrounded by prose, or nested under a "translations" key. ParseReply
// recovers what it can; a reply from which no requested entry can be
// recovered is a ParseError.
func ParseReply(raw string, want []string) (*Outcome, error) {
	doc := extractJSON(raw)
	if doc == "" {
		return nil, &ParseError{Message: "no JSON object in engine reply", Raw: raw}
	}

	obj := gjson.Parse(doc)
	if !obj.IsObject() {
		return nil, &ParseError{Message: "engine reply is not a JSON object", Raw: raw}
	}

	// Some engines nest the mapping under a "translations" key.
	if nested := obj.Get("translations"); nested.IsObject() {
		obj = nested
	}

	found := make(map[string]string)
	obj.ForEach(func(key, value gjson.Result) bool {
		if v := strings.TrimSpace(value.String()); v != "" {
			found[key.String()] = v
		}
		return true
	})

	out := &Outcome{Translations: make(map[string]string, len(want))}
	for _, text := range want {
		if v, ok := found[text]; ok {
			out.Translations[text] = v
		} else {
			out.Missing = append(out.Missing, text)
		}
	}

	if len(out.Translations) == 0 && len(want) > 0 {
		return nil, &ParseError{Message: "engine reply covered none of the requested texts", Raw: raw}
	}

	return out, nil
}

// extractJSON isolates the JSON object from a possibly chatty reply.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Strip Markdown code fences.
	if strings.HasPrefix(s, "```") {
		if _, rest, ok := strings.Cut(s, "\n"); ok {
			s = rest
		}
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}

	if gjson.Valid(s) {
		return s
	}

	// Fall back to the outermost braces.
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	s = s[start : end+1]
	if !gjson.Valid(s) {
		return ""
	}
	return s
}

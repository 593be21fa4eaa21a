package namecast

import "fmt"

// ConfigError indicates invalid configuration (unknown format, bad max
// length, unreadable context file). Reported before any engine call.
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// EngineError indicates an AI engine failure (process failed to start,
// non-zero exit, API error, timeout). Fatal for the whole batch.
type EngineError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the invocation can be retried
	Timeout   bool // Whether the engine exceeded its time budget
}

func (e *EngineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("engine error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("engine error: %s", e.Message)
}

func (e *EngineError) Unwrap() error {
	return e.Cause
}

// ParseError indicates the engine reply could not be parsed as the expected
// JSON mapping and no entries could be recovered.
type ParseError struct {
	Message string
	Raw     string // The unparseable reply, for diagnostics
}

func (e *ParseError) Error() string {
	raw := e.Raw
	if len(raw) > 200 {
		raw = raw[:200] + "..."
	}
	return fmt.Sprintf("parse error: %s: %q", e.Message, raw)
}

// CacheError indicates a cache operation failure. Non-fatal: translation
// proceeds without caching.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// TextError indicates the engine declined or omitted the translation of a
// specific text. Other texts in the same batch still succeed.
type TextError struct {
	Text   string
	Reason string
}

func (e *TextError) Error() string {
	return fmt.Sprintf("text %q: %s", e.Text, e.Reason)
}

package namecast

import (
	"context"
	"fmt"
	"log/slog"
)

// Engine is the interface to the external AI translation engine: one
// request/response exchange per batch, carrying the built prompt.
type Engine interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Cache is the interface for translation caching.
type Cache interface {
	// Get retrieves a cached translation. Returns empty string and false when absent.
	Get(key string) (string, bool)

	// Set stores a formatted translation under its composite key.
	Set(key string, value string) error
}

// Flusher is implemented by caches that persist in bulk. The translator
// flushes on every exit path of a batch so entries computed before a
// failure still reach disk.
type Flusher interface {
	Flush() error
}

// Translator orchestrates cache lookup, prompt building, engine invocation,
// reply parsing, formatting and cache write-back. It holds no state across
// calls other than its configuration.
type Translator struct {
	engine      Engine
	cache       Cache
	context     string
	format      OutputFormat
	maxLength   int
	skipCache   bool
	passthrough bool
	logger      *slog.Logger
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithCache sets the translation cache.
func WithCache(cache Cache) TranslatorOption {
	return func(t *Translator) {
		t.cache = cache
	}
}

// WithContext sets the background context sent to the engine to
// disambiguate domain terminology.
func WithContext(ctx string) TranslatorOption {
	return func(t *Translator) {
		t.context = ctx
	}
}

// WithFormat sets the output naming convention.
func WithFormat(format OutputFormat) TranslatorOption {
	return func(t *Translator) {
		t.format = format
	}
}

// WithMaxLength caps the length of formatted results (0 = unlimited).
func WithMaxLength(n int) TranslatorOption {
	return func(t *Translator) {
		t.maxLength = n
	}
}

// WithSkipCache bypasses cache lookup and write-back entirely.
func WithSkipCache(skip bool) TranslatorOption {
	return func(t *Translator) {
		t.skipCache = skip
	}
}

// WithPassthrough formats Latin-script inputs directly without an engine
// call, the way translation is skipped when source and target language
// already match.
func WithPassthrough(enabled bool) TranslatorOption {
	return func(t *Translator) {
		t.passthrough = enabled
	}
}

// WithLogger sets the logger for non-fatal warnings (cache degradation).
func WithLogger(logger *slog.Logger) TranslatorOption {
	return func(t *Translator) {
		t.logger = logger
	}
}

// NewTranslator creates a Translator backed by the given engine.
// Defaults: kebab-case output, max length 30, no cache, no context.
func NewTranslator(engine Engine, opts ...TranslatorOption) *Translator {
	t := &Translator{
		engine:    engine,
		format:    FormatKebab,
		maxLength: DefaultMaxLength,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// DefaultMaxLength is the default cap on formatted output length.
const DefaultMaxLength = 30

// Translate translates a single text and returns its formatted name.
func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	result, err := t.BatchTranslate(ctx, []string{text})
	if err != nil {
		return "", err
	}
	return result.Output(text)
}

// BatchTranslate translates texts in one engine invocation, serving cached
// entries without an external call. The returned result preserves
// first-occurrence order; duplicate texts map to the same entry.
//
// Configuration and engine-invocation errors abort the whole batch.
// Texts the engine omits are reported as per-text failures while the rest
// succeed.
func (t *Translator) BatchTranslate(ctx context.Context, texts []string) (*BatchResult, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	result := &BatchResult{}
	if len(texts) == 0 {
		return result, nil
	}

	// Deduplicate texts, keeping first-occurrence order. Passthrough
	// entries are formatted on the spot; the rest go to the cache.
	var lookups []string
	for _, text := range texts {
		if _, seen := result.byText[text]; seen {
			continue
		}
		e := Entry{Text: text}

		if t.passthrough && isLatinScript(text) {
			e.Output = FormatPhrase(text, t.format, t.maxLength)
			result.add(e)
			continue
		}

		result.add(e)
		lookups = append(lookups, text)
	}

	// Partition into cache hits and misses.
	var misses []string
	if t.cache != nil && !t.skipCache && len(lookups) > 0 {
		keys := make([]string, len(lookups))
		for i, text := range lookups {
			keys[i] = BuildKey(t.format, t.context, text)
		}
		hits := parallelLookup(t.cache, keys)

		for i, text := range lookups {
			if v, ok := hits[keys[i]]; ok {
				e := &result.Entries[result.byText[text]]
				e.Output = v
				e.Cached = true
				continue
			}
			misses = append(misses, text)
		}
	} else {
		misses = lookups
	}

	if len(misses) > 0 {
		if err := t.translateMisses(ctx, misses, result); err != nil {
			return nil, err
		}
	}

	for _, e := range result.Entries {
		switch {
		case e.Err != nil:
			result.FailedCount++
		case e.Cached:
			result.CachedCount++
		default:
			result.TranslatedCount++
		}
	}

	return result, nil
}

// translateMisses sends one batched request for all uncached texts and
// fills their entries with formatted results or per-text failures.
func (t *Translator) translateMisses(ctx context.Context, misses []string, result *BatchResult) error {
	// Entries written before any failure still get persisted.
	if f, ok := t.cache.(Flusher); ok && !t.skipCache {
		defer func() {
			if err := f.Flush(); err != nil {
				t.logger.Warn("cache flush failed, results not persisted", "error", err)
			}
		}()
	}

	raw, err := t.engine.Complete(ctx, BuildPrompt(misses, t.context, t.maxLength))
	if err != nil {
		if _, ok := err.(*EngineError); ok {
			return err
		}
		return &EngineError{Message: "engine invocation failed", Cause: err}
	}

	outcome, err := ParseReply(raw, misses)
	if err != nil {
		return err
	}

	for _, text := range misses {
		e := &result.Entries[result.byText[text]]
		translated, ok := outcome.Translations[text]
		if !ok {
			e.Err = &TextError{Text: text, Reason: "engine reply omitted this text"}
			continue
		}

		e.Output = FormatPhrase(translated, t.format, t.maxLength)
		if t.cache != nil && !t.skipCache {
			key := BuildKey(t.format, t.context, text)
			if err := t.cache.Set(key, e.Output); err != nil {
				t.logger.Warn("cache write failed, translation not cached", "key", key, "error", err)
			}
		}
	}

	return nil
}

// validate fails fast on configuration errors, before any engine call.
func (t *Translator) validate() error {
	if t.engine == nil {
		return &ConfigError{Message: "no engine configured"}
	}
	if !t.format.Valid() {
		return &ConfigError{Message: fmt.Sprintf("unknown output format: %s", t.format)}
	}
	if t.maxLength < 0 {
		return &ConfigError{Message: fmt.Sprintf("max length must not be negative: %d", t.maxLength)}
	}
	return nil
}

// Format returns the configured output format.
func (t *Translator) Format() OutputFormat {
	return t.format
}

// Context returns the configured translation context.
func (t *Translator) Context() string {
	return t.context
}

// MaxLength returns the configured output length cap.
func (t *Translator) MaxLength() int {
	return t.maxLength
}

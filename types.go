package namecast

// OutputFormat is a code-naming convention applied to a translated phrase.
type OutputFormat string

const (
	// FormatKebab joins lowercase tokens with hyphens (power-board-test).
	FormatKebab OutputFormat = "kebab-case"
	// FormatSnake joins lowercase tokens with underscores (power_board_test).
	FormatSnake OutputFormat = "snake_case"
	// FormatCamel lowercases the first token and capitalizes the rest (powerBoardTest).
	FormatCamel OutputFormat = "camelCase"
	// FormatPascal capitalizes every token (PowerBoardTest).
	FormatPascal OutputFormat = "PascalCase"
	// FormatLower concatenates lowercase tokens with no separator (powerboardtest).
	FormatLower OutputFormat = "lowercase"
	// FormatUpper joins uppercase tokens with underscores (POWER_BOARD_TEST).
	FormatUpper OutputFormat = "UPPERCASE"
)

// Formats returns all supported output formats.
func Formats() []OutputFormat {
	return []OutputFormat{
		FormatKebab,
		FormatSnake,
		FormatCamel,
		FormatPascal,
		FormatLower,
		FormatUpper,
	}
}

// Valid reports whether f is a supported output format.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatKebab, FormatSnake, FormatCamel, FormatPascal, FormatLower, FormatUpper:
		return true
	}
	return false
}

// ParseFormat converts a format identifier into an OutputFormat.
// Unknown identifiers are a configuration error.
func ParseFormat(s string) (OutputFormat, error) {
	f := OutputFormat(s)
	if !f.Valid() {
		return "", &ConfigError{Message: "unknown output format: " + s}
	}
	return f, nil
}

// Entry is the result of translating a single source text.
type Entry struct {
	Text   string // Original source text
	Output string // Formatted translation (empty when Err is set)
	Cached bool   // True when served from the cache
	Err    error  // Per-text failure, nil on success
}

// BatchResult holds the outcome of a batch translation in first-occurrence
// order of the requested texts. Duplicate request texts share one entry.
type BatchResult struct {
	Entries []Entry

	TranslatedCount int // Newly translated via the engine
	CachedCount     int // Served from the cache
	FailedCount     int // Per-text failures

	byText map[string]int
}

// Output returns the formatted result for an originally requested text.
// Duplicates of the same text map to the same value.
func (r *BatchResult) Output(text string) (string, error) {
	i, ok := r.byText[text]
	if !ok {
		return "", &TextError{Text: text, Reason: "not part of this batch"}
	}
	e := r.Entries[i]
	if e.Err != nil {
		return "", e.Err
	}
	return e.Output, nil
}

// Outputs returns a map from source text to formatted result, covering
// successful entries only.
func (r *BatchResult) Outputs() map[string]string {
	out := make(map[string]string, len(r.Entries))
	for _, e := range r.Entries {
		if e.Err == nil {
			out[e.Text] = e.Output
		}
	}
	return out
}

// Failed returns the entries that could not be translated.
func (r *BatchResult) Failed() []Entry {
	var failed []Entry
	for _, e := range r.Entries {
		if e.Err != nil {
			failed = append(failed, e)
		}
	}
	return failed
}

func (r *BatchResult) add(e Entry) {
	if r.byText == nil {
		r.byText = make(map[string]int)
	}
	r.byText[e.Text] = len(r.Entries)
	r.Entries = append(r.Entries, e)
}

package namecast

import (
	"unicode"

	"github.com/abadojack/whatlanggo"
)

// isLatinScript reports whether text is already written in Latin script,
// meaning it needs casting but no translation.
func isLatinScript(text string) bool {
	return whatlanggo.DetectScript(text) == unicode.Latin
}

// Package namecast translates short phrases into English and casts them
// into code-naming conventions.
//
// Namecast batches multiple phrases into a single AI engine invocation,
// keeps a persistent cache keyed by output format, context and source text,
// and applies deterministic case formatting (kebab-case, snake_case,
// camelCase, PascalCase, lowercase, UPPERCASE).
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/namecast/namecast"
//	    "github.com/namecast/namecast/cache"
//	    "github.com/namecast/namecast/engine"
//	)
//
//	func main() {
//	    store, err := cache.NewFileStore(".ai-translator-cache", nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    t := namecast.NewTranslator(engine.NewClaudeEngine(engine.ClaudeConfig{}),
//	        namecast.WithCache(store),
//	        namecast.WithContext("FCT test procedures for a kitchen appliance"),
//	        namecast.WithFormat(namecast.FormatKebab),
//	    )
//
//	    name, err := t.Translate(context.Background(), "電源板測試")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(name) // power-board-test
//	}
package namecast

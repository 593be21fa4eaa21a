package namecast

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ContextEnvVar is the environment variable consulted during context discovery.
const ContextEnvVar = "NAMECAST_CONTEXT"

// Limits on how much of each discovered document is kept as context.
const (
	projectDocLimit = 2000 // CLAUDE.md and similar project descriptions
	readmeLimit     = 1500
	docsFileLimit   = 500
	maxDocsFiles    = 5
)

// contextFileNames are the conventional context files, in lookup order.
// Only the first match is loaded.
var contextFileNames = []string{".context.md", ".context.txt", "CONTEXT.md", "context.md"}

// ContextSources describes where translation context may come from.
type ContextSources struct {
	Inline string // Context passed directly (highest priority)
	File   string // Explicit context file path
	Dir    string // Directory searched for conventional files ("" = cwd)
}

// ResolveContext collects translation context by priority: inline string,
// explicit file, the NAMECAST_CONTEXT environment variable, then
// conventional files in Dir (.context.md and friends, CLAUDE.md, README.md,
// docs/*.md). All found sections are concatenated.
//
// An explicit File that cannot be read is a configuration error; the
// conventional files are best-effort.
func ResolveContext(src ContextSources) (string, error) {
	var sections []string

	if src.Inline != "" {
		sections = append(sections, src.Inline)
	}

	if src.File != "" {
		data, err := os.ReadFile(src.File) // #nosec G304 - path is intentionally user-provided
		if err != nil {
			return "", &ConfigError{Message: "reading context file " + src.File, Cause: err}
		}
		sections = append(sections, fmt.Sprintf("# From %s\n%s", src.File, string(data)))
	}

	if env := os.Getenv(ContextEnvVar); env != "" {
		sections = append(sections, env)
	}

	dir := src.Dir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return strings.Join(sections, "\n\n---\n\n"), nil
		}
	}

	sections = append(sections, discoverProjectContext(dir)...)

	return strings.Join(sections, "\n\n---\n\n"), nil
}

// discoverProjectContext collects conventional context documents from dir.
func discoverProjectContext(dir string) []string {
	var sections []string

	for _, name := range contextFileNames {
		if content, ok := readHead(filepath.Join(dir, name), 0); ok {
			sections = append(sections, fmt.Sprintf("# From %s\n%s", name, content))
			break // only the first dedicated context file
		}
	}

	if content, ok := readHead(filepath.Join(dir, "CLAUDE.md"), projectDocLimit); ok {
		sections = append(sections, "# From CLAUDE.md (project description)\n"+content)
	}

	if content, ok := readHead(filepath.Join(dir, "README.md"), readmeLimit); ok {
		sections = append(sections, "# From README.md\n"+content)
	}

	if docs := readDocsDir(filepath.Join(dir, "docs")); docs != "" {
		sections = append(sections, docs)
	}

	return sections
}

// readDocsDir collects the head of up to maxDocsFiles markdown files.
func readDocsDir(dir string) string {
	matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil || len(matches) == 0 {
		return ""
	}
	sort.Strings(matches)
	if len(matches) > maxDocsFiles {
		matches = matches[:maxDocsFiles]
	}

	var parts []string
	for _, path := range matches {
		if content, ok := readHead(path, docsFileLimit); ok {
			parts = append(parts, fmt.Sprintf("## %s\n%s", filepath.Base(path), content))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "# From docs/\n" + strings.Join(parts, "\n\n")
}

// readHead reads a file, truncating to limit runes when limit > 0.
func readHead(path string, limit int) (string, bool) {
	data, err := os.ReadFile(path) // #nosec G304 - conventional project files
	if err != nil {
		return "", false
	}
	content := string(data)
	if limit > 0 {
		runes := []rune(content)
		if len(runes) > limit {
			content = string(runes[:limit]) + "\n...(truncated)"
		}
	}
	return content, true
}

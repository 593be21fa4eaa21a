package namecast

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveContextInline(t *testing.T) {
	t.Setenv(ContextEnvVar, "")

	got, err := ResolveContext(ContextSources{Inline: "FCT test procedures", Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("ResolveContext() error: %v", err)
	}
	if got != "FCT test procedures" {
		t.Errorf("ResolveContext() = %q", got)
	}
}

func TestResolveContextFile(t *testing.T) {
	t.Setenv(ContextEnvVar, "")

	dir := t.TempDir()
	path := filepath.Join(dir, "ctx.md")
	if err := os.WriteFile(path, []byte("board test glossary"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveContext(ContextSources{File: path, Dir: dir})
	if err != nil {
		t.Fatalf("ResolveContext() error: %v", err)
	}
	if !strings.Contains(got, "board test glossary") {
		t.Errorf("ResolveContext() = %q, missing file content", got)
	}
	if !strings.Contains(got, path) {
		t.Error("context should name its source file")
	}
}

func TestResolveContextMissingFileIsConfigError(t *testing.T) {
	_, err := ResolveContext(ContextSources{File: "/nonexistent/ctx.md", Dir: t.TempDir()})
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error = %T, want *ConfigError", err)
	}
}

func TestResolveContextEnv(t *testing.T) {
	t.Setenv(ContextEnvVar, "env supplied context")

	got, err := ResolveContext(ContextSources{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("ResolveContext() error: %v", err)
	}
	if got != "env supplied context" {
		t.Errorf("ResolveContext() = %q", got)
	}
}

func TestResolveContextCombinesSources(t *testing.T) {
	t.Setenv(ContextEnvVar, "from env")

	dir := t.TempDir()
	got, err := ResolveContext(ContextSources{Inline: "from flag", Dir: dir})
	if err != nil {
		t.Fatalf("ResolveContext() error: %v", err)
	}

	// Inline comes first, sections are separated by markers
	if !strings.HasPrefix(got, "from flag") {
		t.Errorf("inline context must come first, got %q", got)
	}
	if !strings.Contains(got, "\n\n---\n\n") {
		t.Error("sections should be separated by --- markers")
	}
	if !strings.Contains(got, "from env") {
		t.Error("env context missing")
	}
}

func TestDiscoverProjectContext(t *testing.T) {
	t.Setenv(ContextEnvVar, "")
	dir := t.TempDir()

	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write(".context.md", "dedicated context")
	write("CONTEXT.md", "second context file, must be skipped")
	write("CLAUDE.md", "project description")
	write("README.md", "project readme")

	if err := os.Mkdir(filepath.Join(dir, "docs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "docs", "glossary.md"), []byte("term list"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveContext(ContextSources{Dir: dir})
	if err != nil {
		t.Fatalf("ResolveContext() error: %v", err)
	}

	if !strings.Contains(got, "dedicated context") {
		t.Error("missing .context.md content")
	}
	if strings.Contains(got, "must be skipped") {
		t.Error("only the first dedicated context file should be loaded")
	}
	if !strings.Contains(got, "project description") {
		t.Error("missing CLAUDE.md content")
	}
	if !strings.Contains(got, "project readme") {
		t.Error("missing README.md content")
	}
	if !strings.Contains(got, "glossary.md") {
		t.Error("missing docs/ content")
	}
}

func TestDiscoverProjectContextTruncatesLargeDocs(t *testing.T) {
	t.Setenv(ContextEnvVar, "")
	dir := t.TempDir()

	big := strings.Repeat("x", readmeLimit+100)
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte(big), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveContext(ContextSources{Dir: dir})
	if err != nil {
		t.Fatalf("ResolveContext() error: %v", err)
	}
	if !strings.Contains(got, "...(truncated)") {
		t.Error("oversized README should be truncated")
	}
	if len(got) > readmeLimit+200 {
		t.Errorf("context length = %d, truncation not applied", len(got))
	}
}

func TestResolveContextNothingFound(t *testing.T) {
	t.Setenv(ContextEnvVar, "")

	got, err := ResolveContext(ContextSources{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("ResolveContext() error: %v", err)
	}
	if got != "" {
		t.Errorf("ResolveContext() = %q, want empty", got)
	}
}

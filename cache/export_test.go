package cache

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportImportRoundTrip(t *testing.T) {
	source := NewMemoryStore(0)
	source.Set("kebab-case|none|電源板", "power-board")
	source.Set("snake_case|none|顯示板", "display_board")

	var buf bytes.Buffer
	exporter := NewExporter(source)
	if err := exporter.Export(&buf, map[string]string{"source": "test"}); err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	if !strings.Contains(buf.String(), `"version": "1.0"`) {
		t.Error("export missing version field")
	}

	target := NewMemoryStore(0)
	result, err := NewImporter(target).Import(&buf)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}

	if result.Imported != 2 || result.Failed != 0 {
		t.Errorf("imported/failed = %d/%d, want 2/0", result.Imported, result.Failed)
	}
	if result.Version != "1.0" {
		t.Errorf("Version = %q, want 1.0", result.Version)
	}
	if result.Metadata["source"] != "test" {
		t.Errorf("Metadata = %v", result.Metadata)
	}

	val, ok := target.Get("kebab-case|none|電源板")
	if !ok || val != "power-board" {
		t.Errorf("Get() = %q, %v", val, ok)
	}
}

func TestExportImportFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")

	source := NewMemoryStore(0)
	source.Set("k", "v")

	if err := NewExporter(source).ExportToFile(path, nil); err != nil {
		t.Fatalf("ExportToFile() error: %v", err)
	}

	target := NewMemoryStore(0)
	result, err := NewImporter(target).ImportFromFile(path)
	if err != nil {
		t.Fatalf("ImportFromFile() error: %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("Imported = %d, want 1", result.Imported)
	}
}

func TestExportRequiresEnumerableStore(t *testing.T) {
	// RedisStore does not enumerate; export must refuse it cleanly
	var store Store = &RedisStore{}
	err := NewExporter(store).Export(&bytes.Buffer{}, nil)
	if err == nil {
		t.Fatal("expected an error for a non-enumerable store")
	}
	if !strings.Contains(err.Error(), "does not support export") {
		t.Errorf("error = %v", err)
	}
}

func TestImportInvalidJSON(t *testing.T) {
	_, err := NewImporter(NewMemoryStore(0)).Import(strings.NewReader("{not json"))
	if err == nil {
		t.Fatal("expected a decode error")
	}
}

package namecast

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/namecast/namecast/cache"
)

// Full pipeline over a real file-backed cache: cold run hits the engine,
// a second process-equivalent run is served entirely from disk.
func TestFileCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	texts := []string{"電源板", "顯示板", "電源板"}

	store, err := cache.NewFileStore(dir, nil)
	if err != nil {
		t.Fatal(err)
	}

	engine := newStubEngine()
	translator := NewTranslator(engine,
		WithCache(store),
		WithContext("FCT test procedures"),
	)

	first, err := translator.BatchTranslate(context.Background(), texts)
	if err != nil {
		t.Fatalf("cold run error: %v", err)
	}
	if engine.calls != 1 {
		t.Fatalf("cold run engine calls = %d, want 1", engine.calls)
	}
	if first.TranslatedCount != 2 {
		t.Errorf("TranslatedCount = %d, want 2", first.TranslatedCount)
	}

	// The translations file is on disk and human-readable
	raw, err := os.ReadFile(filepath.Join(dir, cache.CacheFileName))
	if err != nil {
		t.Fatalf("translations file not written: %v", err)
	}
	if !strings.Contains(string(raw), "power-board") {
		t.Errorf("translations file missing formatted entry:\n%s", raw)
	}

	// Fresh store and translator, same directory: everything is a hit
	store2, err := cache.NewFileStore(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	engine2 := newStubEngine()
	translator2 := NewTranslator(engine2,
		WithCache(store2),
		WithContext("FCT test procedures"),
	)

	second, err := translator2.BatchTranslate(context.Background(), texts)
	if err != nil {
		t.Fatalf("warm run error: %v", err)
	}
	if engine2.calls != 0 {
		t.Errorf("warm run engine calls = %d, want 0", engine2.calls)
	}
	if second.CachedCount != 2 {
		t.Errorf("warm run CachedCount = %d, want 2", second.CachedCount)
	}

	for _, text := range []string{"電源板", "顯示板"} {
		a, _ := first.Output(text)
		b, _ := second.Output(text)
		if a != b {
			t.Errorf("outputs differ across runs for %q: %q vs %q", text, a, b)
		}
	}
}

// A different context must not reuse entries cached under another context.
func TestFileCacheContextSeparation(t *testing.T) {
	dir := t.TempDir()

	store, _ := cache.NewFileStore(dir, nil)
	engine := newStubEngine()
	translator := NewTranslator(engine, WithCache(store), WithContext("context A"))
	if _, err := translator.BatchTranslate(context.Background(), []string{"電源板"}); err != nil {
		t.Fatal(err)
	}

	store2, _ := cache.NewFileStore(dir, nil)
	engine2 := newStubEngine()
	translator2 := NewTranslator(engine2, WithCache(store2), WithContext("context B"))
	if _, err := translator2.BatchTranslate(context.Background(), []string{"電源板"}); err != nil {
		t.Fatal(err)
	}

	if engine2.calls != 1 {
		t.Errorf("engine calls = %d, want 1 (different context must miss)", engine2.calls)
	}
}

// Partial engine failure still persists the successful entries.
func TestFileCachePersistsPartialBatch(t *testing.T) {
	dir := t.TempDir()

	store, _ := cache.NewFileStore(dir, nil)
	engine := newStubEngine()
	engine.reply = `{"電源板": "Power Board"}`

	translator := NewTranslator(engine, WithCache(store))
	result, err := translator.BatchTranslate(context.Background(), []string{"電源板", "顯示板"})
	if err != nil {
		t.Fatal(err)
	}
	if result.FailedCount != 1 {
		t.Fatalf("FailedCount = %d, want 1", result.FailedCount)
	}

	store2, _ := cache.NewFileStore(dir, nil)
	if _, ok := store2.Get(BuildKey(FormatKebab, "", "電源板")); !ok {
		t.Error("successful entry of a partial batch was not persisted")
	}
	if _, ok := store2.Get(BuildKey(FormatKebab, "", "顯示板")); ok {
		t.Error("failed entry must not be cached")
	}
}

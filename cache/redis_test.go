package cache

import (
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

func TestRedisStoreGetSet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(db, 0, "")

	mock.ExpectSet("namecast:kebab-case|none|電源板", "power-board", 0).SetVal("OK")
	if err := store.Set("kebab-case|none|電源板", "power-board"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	mock.ExpectGet("namecast:kebab-case|none|電源板").SetVal("power-board")
	val, ok := store.Get("kebab-case|none|電源板")
	if !ok {
		t.Fatal("Get() should hit")
	}
	if val != "power-board" {
		t.Errorf("Get() = %q, want %q", val, "power-board")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRedisStoreMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(db, 0, "")

	mock.ExpectGet("namecast:missing").RedisNil()
	if _, ok := store.Get("missing"); ok {
		t.Error("Get() on absent key should miss")
	}
}

func TestRedisStoreErrorIsAMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(db, 0, "")

	mock.ExpectGet("namecast:key").SetErr(errFake)
	if _, ok := store.Get("key"); ok {
		t.Error("a Redis error should degrade to a cache miss")
	}
}

func TestRedisStoreTTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(db, 3600, "")

	mock.ExpectSet("namecast:key", "value", time.Hour).SetVal("OK")
	if err := store.Set("key", "value"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRedisStoreKeyPrefix(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStoreFromClient(db, 0, "other:")

	mock.ExpectGet("other:key").SetVal("value")
	if _, ok := store.Get("key"); !ok {
		t.Error("Get() should hit under the custom prefix")
	}
}

var errFake = &fakeError{}

type fakeError struct{}

func (*fakeError) Error() string { return "connection refused" }

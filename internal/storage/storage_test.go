package storage

import (
	"context"
	"testing"

	"github.com/withobsrvr/recordctl/internal/processor"
	"github.com/withobsrvr/recordctl/internal/record"
)

// exerciseStorage runs the behaviour shared by every RecordStorage
func exerciseStorage(t *testing.T, store RecordStorage) {
	t.Helper()
	ctx := context.Background()

	p := processor.New()
	for _, input := range []string{"first", "second", "third"} {
		if err := store.Append(ctx, "session-b", p.Process(input)); err != nil {
			t.Fatalf("Failed to append record: %v", err)
		}
	}
	if err := store.Append(ctx, "session-a", record.New(0, "other")); err != nil {
		t.Fatalf("Failed to append record to second session: %v", err)
	}

	records, err := store.List(ctx, "session-b")
	if err != nil {
		t.Fatalf("Failed to list records: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	want := p.Records()
	for i, rec := range records {
		if rec != want[i] {
			t.Errorf("records[%d] = %+v, want %+v", i, rec, want[i])
		}
	}

	sessions, err := store.Sessions(ctx)
	if err != nil {
		t.Fatalf("Failed to list sessions: %v", err)
	}
	if len(sessions) != 2 || sessions[0] != "session-a" || sessions[1] != "session-b" {
		t.Errorf("Sessions() = %v, want [session-a session-b]", sessions)
	}

	err = store.Append(ctx, "session-b", record.New(1, "again"))
	if _, ok := err.(ErrDuplicateRecord); !ok {
		t.Errorf("Expected ErrDuplicateRecord, got %v", err)
	}

	_, err = store.List(ctx, "missing")
	if !IsNotFound(err) {
		t.Errorf("Expected not found error, got %v", err)
	}
}

func TestMemoryStorage(t *testing.T) {
	store := NewMemoryStorage()
	if err := store.Open(); err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	exerciseStorage(t, store)
}

func TestMemoryStorage_ListOrdersByID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	for _, id := range []uint64{5, 1, 3} {
		if err := store.Append(ctx, "s", record.New(id, "x")); err != nil {
			t.Fatalf("Failed to append record %d: %v", id, err)
		}
	}

	records, err := store.List(ctx, "s")
	if err != nil {
		t.Fatalf("Failed to list records: %v", err)
	}
	for i, want := range []uint64{1, 3, 5} {
		if records[i].ID != want {
			t.Errorf("records[%d].ID = %d, want %d", i, records[i].ID, want)
		}
	}
}

func TestBoltDBStorage_ContentStoredAsJSON(t *testing.T) {
	ctx := context.Background()
	store, _, cleanup := setupTestStorage(t)
	defer cleanup()

	if err := store.Append(ctx, "typed", record.New(0, 42)); err != nil {
		t.Fatalf("Failed to append record: %v", err)
	}

	records, err := store.List(ctx, "typed")
	if err != nil {
		t.Fatalf("Failed to list records: %v", err)
	}
	if got, ok := records[0].Content.(float64); !ok || got != 42 {
		t.Errorf("Content = %#v, want float64(42)", records[0].Content)
	}
}

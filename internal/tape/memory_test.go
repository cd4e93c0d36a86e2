package tape

import (
	"context"
	"testing"
)

func TestMemoryStoreAppendAndLookup(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatal(err)
	}

	frame, err := Pack([]uint16{1, 0, 0, 1}, 2, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Append(ctx, frame); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.Frame(ctx, 3)
	if err != nil || !ok {
		t.Fatalf("recorded frame missing: ok=%v err=%v", ok, err)
	}
	if got.AliveCount() != 2 {
		t.Fatalf("alive count = %d", got.AliveCount())
	}

	if _, ok, _ := store.Frame(ctx, 4); ok {
		t.Fatal("unrecorded generation must report absent")
	}

	n, err := store.Len(ctx)
	if err != nil || n != 1 {
		t.Fatalf("len = %d err=%v", n, err)
	}

	// Re-appending the same generation replaces the frame in place.
	if err := store.Append(ctx, frame); err != nil {
		t.Fatal(err)
	}
	if n, _ := store.Len(ctx); n != 1 {
		t.Fatalf("duplicate generations must not grow the store, len = %d", n)
	}
	if gens := store.Generations(); len(gens) != 1 || gens[0] != 3 {
		t.Fatalf("generations = %v", gens)
	}
}

func TestFactorySelectsBackends(t *testing.T) {
	store, err := NewStore("", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := store.(*MemoryStore); !ok {
		t.Fatalf("default backend should be memory, got %T", store)
	}
	if _, err := NewStore("parquet", ""); err == nil {
		t.Fatal("unsupported backend must be rejected")
	}
	if err := CloseIfSupported(store); err != nil {
		t.Fatal(err)
	}
}

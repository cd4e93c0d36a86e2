//go:build sqlite

package tape

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore("sqlite", filepath.Join(t.TempDir(), "tape.db"))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Init(ctx); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := CloseIfSupported(store); err != nil {
			t.Fatal(err)
		}
	}()

	cells := []uint16{1, 0, 1, 0, 0, 1}
	frame, err := Pack(cells, 3, 2, 5)
	if err != nil {
		t.Fatal(err)
	}
	frame.Metrics = []uint8{9, 8, 7, 6, 5, 4}
	if err := store.Append(ctx, frame); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.Frame(ctx, 5)
	if err != nil || !ok {
		t.Fatalf("frame lookup: ok=%v err=%v", ok, err)
	}
	back, err := got.Unpack()
	if err != nil {
		t.Fatal(err)
	}
	for i := range cells {
		if back[i] != cells[i] {
			t.Fatalf("cell %d = %d after round trip, expected %d", i, back[i], cells[i])
		}
	}
	if len(got.Metrics) != 6 || got.Metrics[0] != 9 {
		t.Fatalf("metrics = %v", got.Metrics)
	}

	// Upsert replaces in place.
	if err := store.Append(ctx, frame); err != nil {
		t.Fatal(err)
	}
	if n, _ := store.Len(ctx); n != 1 {
		t.Fatalf("len = %d after upsert", n)
	}
}

func TestSQLiteStoreRequiresPath(t *testing.T) {
	if _, err := NewStore("sqlite", ""); err == nil {
		t.Fatal("empty sqlite path must be rejected")
	}
}

func TestSQLiteStoreRequiresInit(t *testing.T) {
	store, err := NewStore("sqlite", filepath.Join(t.TempDir(), "tape.db"))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Append(context.Background(), Frame{}); err == nil {
		t.Fatal("append before Init must fail")
	}
}

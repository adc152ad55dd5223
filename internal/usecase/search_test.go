package usecase

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestSearchBox_AppliesOnlyLastText(t *testing.T) {
	var (
		mu      sync.Mutex
		applied []Filters
		done    = make(chan struct{}, 4)
	)
	box := NewSearchBox(20*time.Millisecond, NewFilters(20, "world_ranking").WithPage(3), func(_ context.Context, f Filters) {
		mu.Lock()
		applied = append(applied, f)
		mu.Unlock()
		done <- struct{}{}
	})
	defer box.Close()

	ctx := context.Background()
	box.Type(ctx, "b")
	box.Type(ctx, "br")
	box.Type(ctx, "bra")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("search was never applied")
	}
	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(applied) != 1 {
		t.Fatalf("expected a single apply, got %d", len(applied))
	}
	if applied[0].Search != "bra" || applied[0].Page != 1 {
		t.Fatalf("unexpected filters: %+v", applied[0])
	}
}

func TestSearchBox_ClearAppliesImmediately(t *testing.T) {
	var got Filters
	calls := 0
	box := NewSearchBox(time.Hour, NewFilters(20, "").WithSearch("arg"), func(_ context.Context, f Filters) {
		calls++
		got = f
	})
	defer box.Close()

	box.Type(context.Background(), "arge")
	box.Clear(context.Background())

	if calls != 1 || got.Search != "" {
		t.Fatalf("expected one immediate apply with empty search, calls=%d filters=%+v", calls, got)
	}
	if box.Pending() {
		t.Fatalf("expected pending keystroke to be cancelled")
	}
}

func TestSearchBox_FlushSkipsTheWait(t *testing.T) {
	var got []string
	box := NewSearchBox(time.Hour, NewFilters(20, ""), func(_ context.Context, f Filters) {
		got = append(got, f.Search)
	})
	defer box.Close()

	box.Type(context.Background(), " japan ")
	if !box.Pending() {
		t.Fatalf("expected pending search before flush")
	}
	box.Flush(context.Background())
	box.Flush(context.Background())

	if box.Pending() {
		t.Fatalf("expected no pending search after flush")
	}
	if len(got) != 1 || got[0] != "japan" {
		t.Fatalf("expected one apply with trimmed text, got %v", got)
	}
}

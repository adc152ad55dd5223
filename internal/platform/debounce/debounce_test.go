package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_OnlyLastTriggerRuns(t *testing.T) {
	t.Parallel()

	d := New(30 * time.Millisecond)
	var last atomic.Int32
	var runs atomic.Int32
	done := make(chan struct{}, 1)

	for i := 1; i <= 5; i++ {
		i := int32(i)
		d.Trigger(func() {
			runs.Add(1)
			last.Store(i)
			done <- struct{}{}
		})
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("debounced task never ran")
	}
	time.Sleep(50 * time.Millisecond)

	if got := runs.Load(); got != 1 {
		t.Fatalf("expected one run, got %d", got)
	}
	if got := last.Load(); got != 5 {
		t.Fatalf("expected last trigger to win, got %d", got)
	}
	if d.Pending() {
		t.Fatalf("expected nothing pending after run")
	}
}

func TestDebouncer_CancelDropsPendingTask(t *testing.T) {
	t.Parallel()

	d := New(20 * time.Millisecond)
	var runs atomic.Int32
	d.Trigger(func() { runs.Add(1) })

	if !d.Cancel() {
		t.Fatalf("expected a pending task to cancel")
	}
	time.Sleep(50 * time.Millisecond)
	if got := runs.Load(); got != 0 {
		t.Fatalf("expected cancelled task not to run, got %d", got)
	}
}

func TestDebouncer_StopRejectsTriggers(t *testing.T) {
	t.Parallel()

	d := New(time.Millisecond)
	d.Stop()
	var runs atomic.Int32
	d.Trigger(func() { runs.Add(1) })
	time.Sleep(20 * time.Millisecond)
	if got := runs.Load(); got != 0 {
		t.Fatalf("expected stopped debouncer to ignore trigger, got %d", got)
	}
}

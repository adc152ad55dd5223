package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/football-ranking/internal/platform/debounce"
)

const DefaultSearchDebounce = 500 * time.Millisecond

// SearchBox applies typed search text to a filter set once typing pauses.
type SearchBox struct {
	debouncer *debounce.Debouncer
	apply     func(ctx context.Context, filters Filters)

	mu      sync.Mutex
	filters Filters
	text    string
}

// NewSearchBox calls apply with the updated filters after every pause of
// wait in typing.
func NewSearchBox(wait time.Duration, initial Filters, apply func(ctx context.Context, filters Filters)) *SearchBox {
	if wait <= 0 {
		wait = DefaultSearchDebounce
	}
	return &SearchBox{
		debouncer: debounce.New(wait),
		apply:     apply,
		filters:   initial,
		text:      initial.Search,
	}
}

// Type records the current text of the box.
func (s *SearchBox) Type(ctx context.Context, text string) {
	s.mu.Lock()
	s.text = text
	s.mu.Unlock()

	s.debouncer.Trigger(func() {
		s.flush(ctx, text)
	})
}

// Clear empties the box and applies immediately.
func (s *SearchBox) Clear(ctx context.Context) {
	s.debouncer.Cancel()
	s.mu.Lock()
	s.text = ""
	s.mu.Unlock()
	s.flush(ctx, "")
}

// Flush applies the current text now instead of waiting for the pause.
func (s *SearchBox) Flush(ctx context.Context) {
	s.debouncer.Cancel()
	s.flush(ctx, s.Text())
}

func (s *SearchBox) flush(ctx context.Context, text string) {
	s.mu.Lock()
	next := s.filters.WithSearch(text)
	changed := next != s.filters
	s.filters = next
	s.mu.Unlock()

	if changed && s.apply != nil {
		s.apply(ctx, next)
	}
}

func (s *SearchBox) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Filters returns the filters as last applied.
func (s *SearchBox) Filters() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SetFilters replaces the non search filters, for example after a page change.
func (s *SearchBox) SetFilters(f Filters) {
	s.mu.Lock()
	f.Search = s.filters.Search
	s.filters = f
	s.mu.Unlock()
}

func (s *SearchBox) Pending() bool {
	return s.debouncer.Pending()
}

func (s *SearchBox) Close() {
	s.debouncer.Stop()
}

package usecase

import (
	"reflect"
	"testing"
)

func TestPaginator_Navigation(t *testing.T) {
	p := NewPaginator(95, 20)

	if got := p.TotalPages(); got != 5 {
		t.Fatalf("expected 5 pages, got %d", got)
	}
	if got := p.Previous(); got != 1 {
		t.Fatalf("previous on first page should stay, got %d", got)
	}
	if got := p.GoToPage(99); got != 5 {
		t.Fatalf("expected clamp to last page, got %d", got)
	}
	if got := p.Next(); got != 5 {
		t.Fatalf("next on last page should stay, got %d", got)
	}
	if got := p.GoToPage(-3); got != 1 {
		t.Fatalf("expected clamp to first page, got %d", got)
	}
	if got := p.Last(); got != 5 {
		t.Fatalf("expected last page 5, got %d", got)
	}
	p.Reset()
	if got := p.Current(); got != 1 {
		t.Fatalf("expected reset to page 1, got %d", got)
	}
}

func TestPaginator_PageNumbersWindow(t *testing.T) {
	p := NewPaginator(200, 20)
	p.GoToPage(10)
	if got, want := p.PageNumbers(), []int{6, 7, 8, 9, 10}; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected window: got=%v want=%v", got, want)
	}
	p.GoToPage(4)
	if got, want := p.PageNumbers(), []int{2, 3, 4, 5, 6}; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected window: got=%v want=%v", got, want)
	}
}

func TestPaginator_NoItems(t *testing.T) {
	p := NewPaginator(0, 20)
	if got := p.Last(); got != 1 {
		t.Fatalf("expected page 1 with no items, got %d", got)
	}
	if p.PageNumbers() != nil {
		t.Fatalf("expected no page numbers without items")
	}
}

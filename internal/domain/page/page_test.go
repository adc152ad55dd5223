package page

import (
	"errors"
	"reflect"
	"testing"
)

func TestPagination_TotalPagesAndClamp(t *testing.T) {
	cases := []struct {
		name      string
		p         Pagination
		requested int
		pages     int
		clamped   int
	}{
		{name: "exact", p: Pagination{Limit: 20, Total: 40}, requested: 2, pages: 2, clamped: 2},
		{name: "remainder", p: Pagination{Limit: 20, Total: 41}, requested: 9, pages: 3, clamped: 3},
		{name: "below one", p: Pagination{Limit: 50, Total: 211}, requested: 0, pages: 5, clamped: 1},
		{name: "negative", p: Pagination{Limit: 10, Total: 5}, requested: -4, pages: 1, clamped: 1},
		{name: "empty", p: Pagination{Limit: 20, Total: 0}, requested: 3, pages: 0, clamped: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.TotalPages(); got != tc.pages {
				t.Fatalf("total pages: got=%d want=%d", got, tc.pages)
			}
			if got := tc.p.Clamp(tc.requested); got != tc.clamped {
				t.Fatalf("clamp(%d): got=%d want=%d", tc.requested, got, tc.clamped)
			}
		})
	}
}

func TestPagination_PageNumbersWindow(t *testing.T) {
	p := Pagination{Page: 1, Limit: 10, Total: 100}
	if got := p.PageNumbers(5); !reflect.DeepEqual(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("first page window: %v", got)
	}

	p.Page = 6
	if got := p.PageNumbers(5); !reflect.DeepEqual(got, []int{4, 5, 6, 7, 8}) {
		t.Fatalf("middle window: %v", got)
	}

	p.Page = 10
	if got := p.PageNumbers(5); !reflect.DeepEqual(got, []int{6, 7, 8, 9, 10}) {
		t.Fatalf("last page window: %v", got)
	}

	if got := Window(1, 2, 5); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("short window: %v", got)
	}
	if !p.HasPrevious() || p.HasNext() {
		t.Fatalf("unexpected navigation flags at last page")
	}
}

func TestResult_IsDiscriminated(t *testing.T) {
	ok := Ok(Page[string]{Pagination: Empty(0)})
	if !ok.IsOK() || ok.Err() != nil {
		t.Fatalf("expected ok result")
	}
	pg, err := ok.Unwrap()
	if err != nil || pg.Items == nil {
		t.Fatalf("expected non-nil empty items, got %v %v", pg.Items, err)
	}
	if pg.Pagination.Limit != DefaultLimit {
		t.Fatalf("expected default limit, got %d", pg.Pagination.Limit)
	}

	boom := errors.New("boom")
	failed := Fail[string](boom)
	if failed.IsOK() {
		t.Fatalf("expected failed result")
	}
	if _, err := failed.Unwrap(); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if Fail[int](nil).Err() == nil {
		t.Fatalf("failed result must always carry an error")
	}
}

func TestResult_ZeroValueIsFailure(t *testing.T) {
	var r Result[int]
	if r.IsOK() {
		t.Fatalf("zero result must not be ok")
	}
	if _, err := r.Unwrap(); err == nil {
		t.Fatalf("zero result must unwrap to an error")
	}
	if r.Err() == nil {
		t.Fatalf("zero result must report an error")
	}
}

// Package page models paged list results returned by the ranking API.
package page

import "errors"

const (
	DefaultPage       = 1
	DefaultLimit      = 20
	DefaultRankLimit  = 50
	DefaultMaxVisible = 5
)

// Limits offered by page size selectors.
var Limits = []int{10, 20, 50, 100}

// Pagination mirrors the server's count for the current filter set. Total is
// never derived from the number of items held.
type Pagination struct {
	Page  int `json:"page" yaml:"page"`
	Limit int `json:"limit" yaml:"limit"`
	Total int `json:"total" yaml:"total"`
}

// Empty is the pagination a list holds before its first response.
func Empty(limit int) Pagination {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return Pagination{Page: DefaultPage, Limit: limit, Total: 0}
}

func (p Pagination) TotalPages() int {
	if p.Limit <= 0 || p.Total <= 0 {
		return 0
	}
	return (p.Total + p.Limit - 1) / p.Limit
}

// Clamp keeps a requested page inside [1, TotalPages]. With no pages at all
// the result is 1.
func (p Pagination) Clamp(requested int) int {
	total := p.TotalPages()
	if requested > total {
		requested = total
	}
	if requested < 1 {
		requested = 1
	}
	return requested
}

func (p Pagination) HasPrevious() bool {
	return p.Page > 1
}

func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages()
}

// PageNumbers returns the window of page links shown around the current page.
func (p Pagination) PageNumbers(maxVisible int) []int {
	return Window(p.Page, p.TotalPages(), maxVisible)
}

// Window centers up to maxVisible page numbers on current, shifting the
// window left when it would run past the last page.
func Window(current, totalPages, maxVisible int) []int {
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisible
	}
	if totalPages <= 0 {
		return nil
	}
	start := max(1, current-maxVisible/2)
	end := min(totalPages, start+maxVisible-1)
	if end-start < maxVisible-1 {
		start = max(1, end-maxVisible+1)
	}

	out := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	return out
}

// Page is one successful list response.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
	// Extra carries endpoint specific envelope fields, such as the
	// confederation statistics of a confederation ranking.
	Extra any
}

// Result is either a page or an error, never both.
type Result[T any] struct {
	ok   bool
	page Page[T]
	err  error
}

func Ok[T any](p Page[T]) Result[T] {
	if p.Items == nil {
		p.Items = []T{}
	}
	return Result[T]{ok: true, page: p}
}

var errMissing = errors.New("failed result without error")

func Fail[T any](err error) Result[T] {
	if err == nil {
		err = errMissing
	}
	return Result[T]{err: err}
}

func (r Result[T]) IsOK() bool {
	return r.ok
}

// Err is nil only for a successful result. The zero Result is a failure.
func (r Result[T]) Err() error {
	if !r.ok && r.err == nil {
		return errMissing
	}
	return r.err
}

func (r Result[T]) Page() Page[T] {
	return r.page
}

func (r Result[T]) Unwrap() (Page[T], error) {
	if !r.ok {
		return Page[T]{}, r.Err()
	}
	return r.page, nil
}

package usecase

import (
	"sync"

	"github.com/riskibarqy/football-ranking/internal/domain/page"
)

// Paginator tracks the current page of a view against a known item total.
type Paginator struct {
	mu         sync.Mutex
	current    int
	limit      int
	total      int
	maxVisible int
}

func NewPaginator(total, limit int) *Paginator {
	if limit <= 0 {
		limit = page.DefaultLimit
	}
	return &Paginator{current: 1, limit: limit, total: total, maxVisible: page.DefaultMaxVisible}
}

func (p *Paginator) snapshot() page.Pagination {
	return page.Pagination{Page: p.current, Limit: p.limit, Total: p.total}
}

// Pagination returns the current position.
func (p *Paginator) Pagination() page.Pagination {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

func (p *Paginator) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Paginator) TotalPages() int {
	return p.Pagination().TotalPages()
}

// SetTotal updates the item count after a response. The current page is left
// alone; callers decide whether to clamp.
func (p *Paginator) SetTotal(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.total = total
}

// GoToPage moves to n clamped into the valid range and returns the new page.
func (p *Paginator) GoToPage(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = p.snapshot().Clamp(n)
	return p.current
}

func (p *Paginator) Next() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.snapshot().HasNext() {
		p.current++
	}
	return p.current
}

func (p *Paginator) Previous() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.snapshot().HasPrevious() {
		p.current--
	}
	return p.current
}

func (p *Paginator) First() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = 1
	return p.current
}

func (p *Paginator) Last() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = max(1, p.snapshot().TotalPages())
	return p.current
}

func (p *Paginator) Reset() {
	p.First()
}

func (p *Paginator) PageNumbers() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot().PageNumbers(p.maxVisible)
}

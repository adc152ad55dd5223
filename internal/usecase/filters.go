package usecase

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/football-ranking/internal/domain/page"
)

// Filters is the UI filter layer of a list view. Changing what is being
// listed (search, confederation, sort order or page size) moves back to the
// first page; changing the page keeps everything else.
type Filters struct {
	Page          int
	Limit         int
	Search        string
	Confederation string
	SortBy        string
}

func NewFilters(limit int, sortBy string) Filters {
	if limit <= 0 {
		limit = page.DefaultLimit
	}
	return Filters{Page: page.DefaultPage, Limit: limit, SortBy: sortBy}
}

func (f Filters) WithPage(p int) Filters {
	if p < 1 {
		p = 1
	}
	f.Page = p
	return f
}

func (f Filters) WithLimit(limit int) Filters {
	if limit <= 0 || limit == f.Limit {
		return f
	}
	f.Limit = limit
	f.Page = 1
	return f
}

func (f Filters) WithSearch(search string) Filters {
	search = strings.TrimSpace(search)
	if search == f.Search {
		return f
	}
	f.Search = search
	f.Page = 1
	return f
}

func (f Filters) WithConfederation(code string) Filters {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == f.Confederation {
		return f
	}
	f.Confederation = code
	f.Page = 1
	return f
}

func (f Filters) WithSortBy(sortBy string) Filters {
	if sortBy == f.SortBy {
		return f
	}
	f.SortBy = sortBy
	f.Page = 1
	return f
}

// Params renders the filter layer. Cleared text filters are sent as empty
// values so they override any construction default.
func (f Filters) Params() page.Params {
	out := page.Params{
		page.KeySearch:        f.Search,
		page.KeyConfederation: f.Confederation,
		page.KeySortBy:        f.SortBy,
	}
	if f.Page > 0 {
		out[page.KeyPage] = strconv.Itoa(f.Page)
	}
	if f.Limit > 0 {
		out[page.KeyLimit] = strconv.Itoa(f.Limit)
	}
	return out
}

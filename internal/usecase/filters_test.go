package usecase

import (
	"testing"

	"github.com/riskibarqy/football-ranking/internal/domain/page"
)

func TestFilters_ResetPageOnFilterChange(t *testing.T) {
	f := NewFilters(20, "world_ranking").WithPage(4)

	if got := f.WithSearch("bra").Page; got != 1 {
		t.Fatalf("search change should reset page, got %d", got)
	}
	if got := f.WithConfederation("uefa").Page; got != 1 {
		t.Fatalf("confederation change should reset page, got %d", got)
	}
	if got := f.WithSortBy("name").Page; got != 1 {
		t.Fatalf("sort change should reset page, got %d", got)
	}
	if got := f.WithLimit(50).Page; got != 1 {
		t.Fatalf("limit change should reset page, got %d", got)
	}
	if got := f.WithSortBy("world_ranking").Page; got != 4 {
		t.Fatalf("unchanged sort must keep page, got %d", got)
	}
}

func TestFilters_PageChangeKeepsFilters(t *testing.T) {
	f := NewFilters(20, "name").WithSearch("ar").WithConfederation("CAF").WithPage(3)
	if f.Search != "ar" || f.Confederation != "CAF" || f.SortBy != "name" || f.Page != 3 {
		t.Fatalf("unexpected filters: %+v", f)
	}
}

func TestFilters_ParamsOverrideBase(t *testing.T) {
	base := page.Params{page.KeyLimit: "50", page.KeyConfederation: "UEFA"}
	f := NewFilters(20, "").WithPage(2)

	merged := page.Merge(base, f.Params())
	if merged[page.KeyLimit] != "20" || merged[page.KeyPage] != "2" {
		t.Fatalf("expected ui layer to win: %v", merged)
	}
	if got := merged.Encode(); got != "limit=20&page=2" {
		t.Fatalf("expected cleared filters dropped on encode, got %q", got)
	}
}

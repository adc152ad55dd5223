package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/football-ranking/internal/domain/country"
)

func TestCountryRepository_RanksByPoints(t *testing.T) {
	repo := NewCountryRepository(SeedCountries())

	items, err := repo.List(context.Background(), CountryFilter{})
	if err != nil {
		t.Fatalf("list countries: %v", err)
	}
	if len(items) != 6 {
		t.Fatalf("unexpected count: %d", len(items))
	}
	if items[0].ID != CountryIDArgentina || items[0].WorldRanking != 1 {
		t.Fatalf("expected Argentina first, got %+v", items[0])
	}
	if items[len(items)-1].ID != CountryIDIndonesia {
		t.Fatalf("expected Indonesia last, got %+v", items[len(items)-1])
	}

	japan, _, _ := repo.GetByID(context.Background(), CountryIDJapan)
	if japan.ConfederationRanking != 1 {
		t.Fatalf("expected Japan first in AFC, got %d", japan.ConfederationRanking)
	}
}

func TestCountryRepository_FilterAndSearch(t *testing.T) {
	repo := NewCountryRepository(SeedCountries())

	items, _ := repo.List(context.Background(), CountryFilter{Confederation: country.ConfederationUEFA, SortBy: country.SortByName})
	if len(items) != 2 || items[0].Name != "France" || items[1].Name != "Spain" {
		t.Fatalf("unexpected UEFA listing: %+v", items)
	}

	items, _ = repo.List(context.Background(), CountryFilter{Search: "idn"})
	if len(items) != 1 || items[0].ID != CountryIDIndonesia {
		t.Fatalf("expected code search to match Indonesia, got %+v", items)
	}
}

func TestCountryRepository_HistoryTracksMoves(t *testing.T) {
	repo := NewCountryRepository(SeedCountries())
	ctx := context.Background()

	repo.AdjustPoints(ctx, CountryIDJapan, 100)

	history := repo.History(ctx, CountryIDJapan, 2)
	if len(history) != 2 {
		t.Fatalf("expected two history entries, got %d", len(history))
	}
	if history[0].WorldRanking != 4 || history[1].WorldRanking != 5 {
		t.Fatalf("expected newest first 4 then 5, got %+v", history)
	}

	japan, _, _ := repo.GetByID(ctx, CountryIDJapan)
	if japan.RankingChange != 1 {
		t.Fatalf("expected ranking change +1, got %d", japan.RankingChange)
	}
}

func TestCountryRepository_RecordForm(t *testing.T) {
	repo := NewCountryRepository([]country.Country{{ID: 1, Name: "A", Code: "AAA", Last10Matches: "WWWWWWWWWW"}})

	repo.RecordForm(context.Background(), 1, "L")

	item, _, _ := repo.GetByID(context.Background(), 1)
	if item.Last10Matches != "LWWWWWWWWW" {
		t.Fatalf("unexpected form: %s", item.Last10Matches)
	}
	if item.RecentWins != 9 || item.RecentLosses != 1 || item.WinPercentage.String() != "90.00" {
		t.Fatalf("unexpected form counters: %+v", item)
	}
}

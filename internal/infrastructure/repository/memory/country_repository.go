package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/football-ranking/internal/domain/country"
	"github.com/riskibarqy/football-ranking/internal/domain/value"
)

// CountryFilter narrows a country listing. Empty fields match everything.
type CountryFilter struct {
	Search        string
	Confederation country.Confederation
	SortBy        string
}

// CountryRepository keeps countries ranked by FIFA points and records a
// history entry whenever a country's world ranking moves.
type CountryRepository struct {
	mu        sync.RWMutex
	countries map[int64]country.Country
	history   map[int64][]country.RankingHistoryEntry
	nextID    int64
	historyID int64
	now       func() time.Time
}

func NewCountryRepository(items []country.Country) *CountryRepository {
	repo := &CountryRepository{
		countries: make(map[int64]country.Country, len(items)),
		history:   make(map[int64][]country.RankingHistoryEntry),
		now:       time.Now,
	}
	for _, item := range items {
		repo.countries[item.ID] = item
		repo.nextID = max(repo.nextID, item.ID)
	}
	repo.rerankLocked()

	return repo
}

func (r *CountryRepository) List(_ context.Context, filter CountryFilter) ([]country.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]country.Country, 0, len(r.countries))
	for _, item := range r.countries {
		if filter.Confederation != "" && item.Confederation != filter.Confederation {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Code), search) {
			continue
		}
		out = append(out, item)
	}

	slices.SortFunc(out, countryOrder(filter.SortBy))
	return out, nil
}

func countryOrder(sortBy string) func(a, b country.Country) int {
	switch sortBy {
	case country.SortByName:
		return func(a, b country.Country) int { return cmp.Compare(a.Name, b.Name) }
	case country.SortByPoints:
		return func(a, b country.Country) int {
			return cmp.Or(cmp.Compare(b.FIFAPoints, a.FIFAPoints), cmp.Compare(a.ID, b.ID))
		}
	default:
		return func(a, b country.Country) int {
			return cmp.Or(cmp.Compare(a.WorldRanking, b.WorldRanking), cmp.Compare(a.ID, b.ID))
		}
	}
}

func (r *CountryRepository) GetByID(_ context.Context, id int64) (country.Country, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.countries[id]
	return item, ok, nil
}

// CodeTaken reports whether another country already uses code.
func (r *CountryRepository) CodeTaken(_ context.Context, code string, exceptID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.countries {
		if item.ID != exceptID && strings.EqualFold(item.Code, code) {
			return true
		}
	}
	return false
}

func (r *CountryRepository) Create(_ context.Context, in country.Input) (country.Country, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item := country.Country{
		ID:            r.nextID,
		Name:          in.Name,
		Code:          in.Code,
		Confederation: in.Confederation,
		FlagURL:       in.FlagURL,
		FIFAPoints:    in.FIFAPoints,
	}
	r.countries[item.ID] = item
	r.rerankLocked()

	return r.countries[item.ID], nil
}

func (r *CountryRepository) Update(_ context.Context, id int64, in country.Input) (country.Country, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.countries[id]
	if !ok {
		return country.Country{}, false, nil
	}
	item.Name = in.Name
	item.Code = in.Code
	item.Confederation = in.Confederation
	item.FlagURL = in.FlagURL
	item.FIFAPoints = in.FIFAPoints
	r.countries[id] = item
	r.rerankLocked()

	return r.countries[id], true, nil
}

// AdjustPoints adds delta to a country's points and re-ranks everyone.
func (r *CountryRepository) AdjustPoints(_ context.Context, id int64, delta float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.countries[id]
	if !ok {
		return
	}
	item.FIFAPoints = value.Decimal(max(0, item.FIFAPoints.Float64()+delta))
	r.countries[id] = item
	r.rerankLocked()
}

// RecordForm prepends a W/D/L letter to the country's last ten results.
func (r *CountryRepository) RecordForm(_ context.Context, id int64, letter string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.countries[id]
	if !ok {
		return
	}
	form := letter + item.Last10Matches
	if len(form) > 10 {
		form = form[:10]
	}
	item.Last10Matches = form
	item.RecentWins = strings.Count(form, "W")
	item.RecentDraws = strings.Count(form, "D")
	item.RecentLosses = strings.Count(form, "L")
	item.WinPercentage = value.Decimal(country.WinPercentage(form))
	r.countries[id] = item
}

func (r *CountryRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.countries[id]; !ok {
		return false, nil
	}
	delete(r.countries, id)
	delete(r.history, id)
	r.rerankLocked()

	return true, nil
}

// History returns the newest entries first.
func (r *CountryRepository) History(_ context.Context, id int64, limit int) []country.RankingHistoryEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.history[id]
	out := make([]country.RankingHistoryEntry, 0, min(len(rows), max(limit, 0)))
	for i := len(rows) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, rows[i])
	}
	return out
}

func (r *CountryRepository) rerankLocked() {
	ordered := make([]country.Country, 0, len(r.countries))
	for _, item := range r.countries {
		ordered = append(ordered, item)
	}
	slices.SortFunc(ordered, countryOrder(country.SortByPoints))

	perConfederation := make(map[country.Confederation]int)
	for idx, item := range ordered {
		previous := item.WorldRanking
		item.WorldRanking = idx + 1
		perConfederation[item.Confederation]++
		item.ConfederationRanking = perConfederation[item.Confederation]
		if previous != 0 {
			item.RankingChange = previous - item.WorldRanking
		}
		if previous != item.WorldRanking {
			r.historyID++
			r.history[item.ID] = append(r.history[item.ID], country.RankingHistoryEntry{
				ID:           r.historyID,
				CountryID:    item.ID,
				WorldRanking: item.WorldRanking,
				FIFAPoints:   item.FIFAPoints,
				RecordedAt:   r.now().UTC().Format(time.RFC3339),
			})
		}
		r.countries[item.ID] = item
	}
}

package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/football-ranking/internal/domain/match"
)

type MatchFilter struct {
	CountryID     int64
	CompetitionID int64
	Status        match.Status
}

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[int64]match.Match
	nextID  int64
	eventID int64
}

func NewMatchRepository(items []match.Match) *MatchRepository {
	repo := &MatchRepository{matches: make(map[int64]match.Match, len(items))}
	for _, item := range items {
		repo.matches[item.ID] = item
		repo.nextID = max(repo.nextID, item.ID)
		for _, event := range item.Events {
			repo.eventID = max(repo.eventID, event.ID)
		}
	}

	return repo
}

// List returns matches newest first.
func (r *MatchRepository) List(_ context.Context, filter MatchFilter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, item := range r.matches {
		if filter.CountryID != 0 && item.HomeID != filter.CountryID && item.AwayID != filter.CountryID {
			continue
		}
		if filter.CompetitionID != 0 && (item.CompetitionID == nil || *item.CompetitionID != filter.CompetitionID) {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		item.Events = nil
		out = append(out, item)
	}

	slices.SortFunc(out, func(a, b match.Match) int {
		return cmp.Or(cmp.Compare(b.MatchDate, a.MatchDate), cmp.Compare(b.ID, a.ID))
	})
	return out, nil
}

// Upcoming returns scheduled matches soonest first.
func (r *MatchRepository) Upcoming(ctx context.Context, limit int) []match.Match {
	items, _ := r.List(ctx, MatchFilter{Status: match.StatusScheduled})
	slices.Reverse(items)
	return items[:min(limit, len(items))]
}

func (r *MatchRepository) Recent(ctx context.Context, limit int) []match.Match {
	items, _ := r.List(ctx, MatchFilter{Status: match.StatusFinished})
	return items[:min(limit, len(items))]
}

func (r *MatchRepository) HeadToHead(ctx context.Context, id1, id2 int64, limit int) []match.Match {
	items, _ := r.List(ctx, MatchFilter{CountryID: id1})
	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		if item.HomeID == id2 || item.AwayID == id2 {
			out = append(out, item)
		}
	}
	return out[:min(limit, len(out))]
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.matches[id]
	if ok {
		item.Events = slices.Clone(item.Events)
	}
	return item, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	if item.Status == "" {
		item.Status = match.StatusScheduled
	}
	r.matches[item.ID] = item

	return item, nil
}

// SetResult stores the final score and marks the match finished.
func (r *MatchRepository) SetResult(_ context.Context, id int64, home, away int) (match.Match, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.matches[id]
	if !ok {
		return match.Match{}, false, nil
	}
	item.ScoreHome = &home
	item.ScoreAway = &away
	item.Status = match.StatusFinished
	r.matches[id] = item

	return item, true, nil
}

func (r *MatchRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.matches[id]; !ok {
		return false, nil
	}
	delete(r.matches, id)
	return true, nil
}

func (r *MatchRepository) AddEvent(_ context.Context, matchID int64, event match.Event) (match.Event, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.matches[matchID]
	if !ok {
		return match.Event{}, false, nil
	}
	r.eventID++
	event.ID = r.eventID
	event.MatchID = matchID
	item.Events = append(item.Events, event)
	r.matches[matchID] = item

	return event, true, nil
}

// Events are ordered by minute.
func (r *MatchRepository) Events(_ context.Context, matchID int64) ([]match.Event, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.matches[matchID]
	if !ok {
		return nil, false
	}
	out := slices.Clone(item.Events)
	slices.SortStableFunc(out, func(a, b match.Event) int { return cmp.Compare(a.Minute, b.Minute) })
	if out == nil {
		out = []match.Event{}
	}
	return out, true
}

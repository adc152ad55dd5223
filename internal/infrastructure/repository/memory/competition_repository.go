package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/riskibarqy/football-ranking/internal/domain/competition"
	"github.com/riskibarqy/football-ranking/internal/domain/country"
)

type CompetitionFilter struct {
	Search string
	Type   competition.Type
	Status competition.Status
}

type CompetitionRepository struct {
	mu           sync.RWMutex
	competitions map[int64]competition.Competition
	nextID       int64
}

func NewCompetitionRepository(items []competition.Competition) *CompetitionRepository {
	repo := &CompetitionRepository{competitions: make(map[int64]competition.Competition, len(items))}
	for _, item := range items {
		item.ParticipantCount = len(item.Participants)
		repo.competitions[item.ID] = item
		repo.nextID = max(repo.nextID, item.ID)
	}

	return repo
}

func (r *CompetitionRepository) List(_ context.Context, filter CompetitionFilter) ([]competition.Competition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]competition.Competition, 0, len(r.competitions))
	for _, item := range r.competitions {
		if filter.Type != "" && item.Type != filter.Type {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		item.Participants = nil
		out = append(out, item)
	}

	slices.SortFunc(out, func(a, b competition.Competition) int {
		return cmp.Or(cmp.Compare(b.Year, a.Year), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

func (r *CompetitionRepository) GetByID(_ context.Context, id int64) (competition.Competition, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.competitions[id]
	if ok {
		item.Participants = slices.Clone(item.Participants)
	}
	return item, ok, nil
}

func (r *CompetitionRepository) Create(_ context.Context, in competition.Input) (competition.Competition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item := applyCompetitionInput(competition.Competition{ID: r.nextID}, in)
	if item.Status == "" {
		item.Status = competition.StatusUpcoming
	}
	r.competitions[item.ID] = item

	return item, nil
}

func (r *CompetitionRepository) Update(_ context.Context, id int64, in competition.Input) (competition.Competition, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.competitions[id]
	if !ok {
		return competition.Competition{}, false, nil
	}
	status := item.Status
	item = applyCompetitionInput(item, in)
	if item.Status == "" {
		item.Status = status
	}
	r.competitions[id] = item

	return item, true, nil
}

func applyCompetitionInput(item competition.Competition, in competition.Input) competition.Competition {
	item.Name = in.Name
	item.Type = in.Type
	item.Format = in.Format
	item.Status = in.Status
	item.Confederation = in.Confederation
	item.Year = in.Year
	item.StartDate = in.StartDate
	item.EndDate = in.EndDate
	item.ImportanceFactor = in.ImportanceFactor
	item.Description = in.Description
	return item
}

func (r *CompetitionRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.competitions[id]; !ok {
		return false, nil
	}
	delete(r.competitions, id)
	return true, nil
}

// AddParticipants skips countries that already take part. It returns false
// when the competition does not exist.
func (r *CompetitionRepository) AddParticipants(_ context.Context, id int64, countries []country.Country, group string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.competitions[id]
	if !ok {
		return false, nil
	}
	for _, c := range countries {
		exists := slices.ContainsFunc(item.Participants, func(p competition.Participant) bool {
			return p.CountryID == c.ID
		})
		if exists {
			continue
		}
		item.Participants = append(item.Participants, competition.Participant{
			CountryID:   c.ID,
			CountryName: c.Name,
			CountryCode: c.Code,
			GroupName:   group,
		})
	}
	item.ParticipantCount = len(item.Participants)
	r.competitions[id] = item

	return true, nil
}

func (r *CompetitionRepository) RemoveParticipant(_ context.Context, id, countryID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.competitions[id]
	if !ok {
		return false, nil
	}
	idx := slices.IndexFunc(item.Participants, func(p competition.Participant) bool {
		return p.CountryID == countryID
	})
	if idx < 0 {
		return false, nil
	}
	item.Participants = slices.Delete(item.Participants, idx, idx+1)
	item.ParticipantCount = len(item.Participants)
	r.competitions[id] = item

	return true, nil
}

package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/football-ranking/internal/domain/country"
	"github.com/riskibarqy/football-ranking/internal/domain/ranking"
	"github.com/riskibarqy/football-ranking/internal/platform/logging"
)

const (
	DefaultMoversWorkers = 8
	DefaultMoversCount   = 5
	moversHistoryLimit   = 2
)

// Mover is a country whose world ranking changed between its two newest
// ranking snapshots.
type Mover struct {
	Country  country.Country `json:"country" yaml:"country"`
	Current  int             `json:"current" yaml:"current"`
	Previous int             `json:"previous" yaml:"previous"`
	Delta    int             `json:"delta" yaml:"delta"`
	Change   ranking.Change  `json:"change" yaml:"change"`
}

type Movers struct {
	Climbers []Mover `json:"climbers" yaml:"climbers"`
	Fallers  []Mover `json:"fallers" yaml:"fallers"`
	// Failed counts countries whose history could not be loaded.
	Failed int `json:"failed" yaml:"failed"`
}

// MoversService ranks countries by their latest ranking movement.
type MoversService struct {
	countries country.API
	workers   int
	logger    *logging.Logger
}

func NewMoversService(countries country.API, workers int, logger *logging.Logger) *MoversService {
	if workers <= 0 {
		workers = DefaultMoversWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &MoversService{countries: countries, workers: workers, logger: logger}
}

// TopMovers loads the ranking history of every country on a bounded worker
// pool and returns the n biggest climbers and fallers.
func (s *MoversService) TopMovers(ctx context.Context, countries []country.Country, n int) (Movers, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MoversService.TopMovers")
	defer span.End()

	if n <= 0 {
		n = DefaultMoversCount
	}
	if len(countries) == 0 {
		return Movers{Climbers: []Mover{}, Fallers: []Mover{}}, nil
	}

	pool, err := ants.NewPool(min(s.workers, len(countries)))
	if err != nil {
		return Movers{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		movers  []Mover
		failed  atomic.Int32
		workers sync.WaitGroup
	)
	for _, item := range countries {
		if item.ID == 0 {
			continue
		}
		item := item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			mover, ok, err := s.moverFor(ctx, item)
			if err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "load ranking history failed", "country_id", item.ID, "error", err)
				return
			}
			if !ok {
				return
			}
			mu.Lock()
			movers = append(movers, mover)
			mu.Unlock()
		}); err != nil {
			workers.Done()
			return Movers{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	out := Movers{Climbers: []Mover{}, Fallers: []Mover{}, Failed: int(failed.Load())}
	for _, m := range movers {
		if m.Delta > 0 {
			out.Climbers = append(out.Climbers, m)
		} else {
			out.Fallers = append(out.Fallers, m)
		}
	}
	sort.SliceStable(out.Climbers, func(i, j int) bool {
		if out.Climbers[i].Delta != out.Climbers[j].Delta {
			return out.Climbers[i].Delta > out.Climbers[j].Delta
		}
		return out.Climbers[i].Current < out.Climbers[j].Current
	})
	sort.SliceStable(out.Fallers, func(i, j int) bool {
		if out.Fallers[i].Delta != out.Fallers[j].Delta {
			return out.Fallers[i].Delta < out.Fallers[j].Delta
		}
		return out.Fallers[i].Current < out.Fallers[j].Current
	})
	if len(out.Climbers) > n {
		out.Climbers = out.Climbers[:n]
	}
	if len(out.Fallers) > n {
		out.Fallers = out.Fallers[:n]
	}
	return out, nil
}

func (s *MoversService) moverFor(ctx context.Context, c country.Country) (Mover, bool, error) {
	history, err := s.countries.RankingHistory(ctx, c.ID, moversHistoryLimit).Unwrap()
	if err != nil {
		return Mover{}, false, err
	}
	if len(history.Items) < 2 {
		return Mover{}, false, nil
	}
	current := history.Items[0].WorldRanking
	previous := history.Items[1].WorldRanking
	change := ranking.ChangeOf(current, previous)
	if !change.Known || change.Direction == ranking.DirectionSame {
		return Mover{}, false, nil
	}
	return Mover{
		Country:  c,
		Current:  current,
		Previous: previous,
		Delta:    previous - current,
		Change:   change,
	}, true, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/football-ranking/internal/domain/competition"
	"github.com/riskibarqy/football-ranking/internal/domain/country"
	"github.com/riskibarqy/football-ranking/internal/domain/match"
	"github.com/riskibarqy/football-ranking/internal/domain/page"
	"github.com/riskibarqy/football-ranking/internal/platform/logging"
	"github.com/riskibarqy/football-ranking/internal/platform/notify"
	"github.com/riskibarqy/football-ranking/internal/platform/resilience"
)

// Sizes of the dashboard lists.
const (
	DashboardCountriesLimit = 50
	DashboardMatchesLimit   = 5
)

type AppStateDeps struct {
	Countries    country.API
	Competitions competition.API
	Matches      match.API
	Notifier     notify.Notifier
	Logger       *logging.Logger
}

// Snapshot is the dashboard data shared by every view.
type Snapshot struct {
	Countries       []country.Country
	Competitions    []competition.Competition
	RecentMatches   []match.Match
	UpcomingMatches []match.Match
}

// AppState holds the dashboard snapshot and performs writes that keep it
// current.
type AppState struct {
	countries    country.API
	competitions competition.API
	matches      match.API
	notifier     notify.Notifier
	logger       *logging.Logger

	mu       sync.RWMutex
	snapshot Snapshot
	loadedAt snapshotGens

	// writes counts successful mutations. Loads started at the same count
	// share one request; a load never overwrites a list loaded at a later count.
	writes         atomic.Uint64
	loading        atomic.Int64
	initialLoading atomic.Bool
	closed         atomic.Bool
	refreshGroup   resilience.SingleFlight[struct{}]
}

// snapshotGens records the write count each snapshot list was loaded at.
type snapshotGens struct {
	countries    uint64
	competitions uint64
	recent       uint64
	upcoming     uint64
}

// storeIfCurrent replaces dst unless it already holds data loaded after gen.
func storeIfCurrent[T any](dst *[]T, at *uint64, gen uint64, items []T) {
	if gen < *at {
		return
	}
	*dst = items
	*at = gen
}

func NewAppState(deps AppStateDeps) *AppState {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Default()
	}
	notifier := deps.Notifier
	if notifier == nil {
		notifier = notify.Discard
	}
	s := &AppState{
		countries:    deps.Countries,
		competitions: deps.Competitions,
		matches:      deps.Matches,
		notifier:     notifier,
		logger:       logger.Named("app_state"),
		snapshot: Snapshot{
			Countries:       []country.Country{},
			Competitions:    []competition.Competition{},
			RecentMatches:   []match.Match{},
			UpcomingMatches: []match.Match{},
		},
	}
	s.initialLoading.Store(true)
	return s
}

// Snapshot returns copies of the dashboard lists.
func (s *AppState) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Countries:       append([]country.Country{}, s.snapshot.Countries...),
		Competitions:    append([]competition.Competition{}, s.snapshot.Competitions...),
		RecentMatches:   append([]match.Match{}, s.snapshot.RecentMatches...),
		UpcomingMatches: append([]match.Match{}, s.snapshot.UpcomingMatches...),
	}
}

// Loading reports whether any mutation or dashboard read is in flight.
func (s *AppState) Loading() bool {
	return s.loading.Load() > 0
}

// InitialLoading stays true until the first dashboard load settles.
func (s *AppState) InitialLoading() bool {
	return s.initialLoading.Load()
}

// Close stops the state from accepting further updates.
func (s *AppState) Close() {
	s.closed.Store(true)
}

// Start performs the initial dashboard load.
func (s *AppState) Start(ctx context.Context) error {
	s.initialLoading.Store(true)
	defer s.initialLoading.Store(false)
	return s.Refresh(ctx)
}

// Refresh reloads countries, recent and upcoming matches concurrently.
// Callers arriving between the same two writes share one load; a refresh
// issued after a write always starts a new one. Lists whose request
// succeeded are replaced even when another one failed.
func (s *AppState) Refresh(ctx context.Context) error {
	gen := s.writes.Load()
	_, err, _ := s.refreshGroup.Do("dashboard:"+strconv.FormatUint(gen, 10), func() (struct{}, error) {
		return struct{}{}, s.loadDashboard(context.WithoutCancel(ctx), gen)
	})
	return err
}

func (s *AppState) loadDashboard(ctx context.Context, gen uint64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AppState.loadDashboard")
	defer span.End()

	var (
		countries        page.Result[country.Country]
		recent, upcoming page.Result[match.Match]
		wg               conc.WaitGroup
	)
	wg.Go(func() {
		countries = s.countries.ListCountries(ctx, page.Params{page.KeyLimit: strconv.Itoa(DashboardCountriesLimit)})
	})
	wg.Go(func() {
		recent = s.matches.RecentMatches(ctx, DashboardMatchesLimit)
	})
	wg.Go(func() {
		upcoming = s.matches.UpcomingMatches(ctx, DashboardMatchesLimit)
	})
	wg.Wait()

	var errs []error
	if !s.closed.Load() {
		s.mu.Lock()
		if p, err := countries.Unwrap(); err != nil {
			errs = append(errs, fmt.Errorf("list countries: %w", err))
		} else {
			storeIfCurrent(&s.snapshot.Countries, &s.loadedAt.countries, gen, p.Items)
		}
		if p, err := recent.Unwrap(); err != nil {
			errs = append(errs, fmt.Errorf("recent matches: %w", err))
		} else {
			storeIfCurrent(&s.snapshot.RecentMatches, &s.loadedAt.recent, gen, p.Items)
		}
		if p, err := upcoming.Unwrap(); err != nil {
			errs = append(errs, fmt.Errorf("upcoming matches: %w", err))
		} else {
			storeIfCurrent(&s.snapshot.UpcomingMatches, &s.loadedAt.upcoming, gen, p.Items)
		}
		s.mu.Unlock()
	}

	if err := errors.Join(errs...); err != nil {
		s.logger.WarnContext(ctx, "load dashboard failed", "error", err)
		notify.Error(ctx, s.notifier, MsgLoadInitialDataFailed)
		return err
	}
	return nil
}

// FetchCountries replaces the dashboard country list.
func (s *AppState) FetchCountries(ctx context.Context, params page.Params) (page.Page[country.Country], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AppState.FetchCountries")
	defer span.End()

	done := s.begin()
	defer done()

	gen := s.writes.Load()
	p, err := s.countries.ListCountries(ctx, params).Unwrap()
	if err != nil {
		s.logger.WarnContext(ctx, "fetch countries failed", "error", err)
		notify.Error(ctx, s.notifier, MsgFetchCountriesFailed)
		return page.Page[country.Country]{}, fmt.Errorf("list countries: %w", err)
	}
	if !s.closed.Load() {
		s.mu.Lock()
		storeIfCurrent(&s.snapshot.Countries, &s.loadedAt.countries, gen, p.Items)
		s.mu.Unlock()
	}
	return p, nil
}

// FetchCompetitions replaces the dashboard competition list.
func (s *AppState) FetchCompetitions(ctx context.Context, params page.Params) (page.Page[competition.Competition], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AppState.FetchCompetitions")
	defer span.End()

	done := s.begin()
	defer done()

	gen := s.writes.Load()
	p, err := s.competitions.ListCompetitions(ctx, params).Unwrap()
	if err != nil {
		s.logger.WarnContext(ctx, "fetch competitions failed", "error", err)
		notify.Error(ctx, s.notifier, MsgFetchCompetitionsFailed)
		return page.Page[competition.Competition]{}, fmt.Errorf("list competitions: %w", err)
	}
	if !s.closed.Load() {
		s.mu.Lock()
		storeIfCurrent(&s.snapshot.Competitions, &s.loadedAt.competitions, gen, p.Items)
		s.mu.Unlock()
	}
	return p, nil
}

func (s *AppState) begin() func() {
	s.loading.Add(1)
	return func() { s.loading.Add(-1) }
}

// mutate runs one write: raise loading, write, announce, refresh dependents.
// A failed refresh is reported by the refresh and does not fail the write.
func (s *AppState) mutate(ctx context.Context, op, success, failure string, write func(ctx context.Context) error, refresh func(ctx context.Context) error) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AppState."+op)
	defer span.End()

	done := s.begin()
	defer done()

	if err := write(ctx); err != nil {
		s.logger.WarnContext(ctx, "mutation failed", "op", op, "error", err)
		notify.Error(ctx, s.notifier, MutationMessage(err, failure))
		return fmt.Errorf("%s: %w", op, err)
	}
	s.writes.Add(1)
	notify.Success(ctx, s.notifier, success)

	if refresh != nil {
		if err := refresh(ctx); err != nil {
			s.logger.WarnContext(ctx, "refresh after mutation failed", "op", op, "error", err)
		}
	}
	return nil
}

func (s *AppState) refreshCountries(ctx context.Context) error {
	_, err := s.FetchCountries(ctx, page.Params{page.KeyLimit: strconv.Itoa(DashboardCountriesLimit)})
	return err
}

func (s *AppState) refreshCompetitions(ctx context.Context) error {
	_, err := s.FetchCompetitions(ctx, nil)
	return err
}

func (s *AppState) CreateCountry(ctx context.Context, in country.Input) (country.Country, error) {
	var out country.Country
	err := s.mutate(ctx, "CreateCountry", MsgCountryCreated, MsgCreateCountryFailed, func(ctx context.Context) error {
		var err error
		out, err = s.countries.CreateCountry(ctx, in)
		return err
	}, s.refreshCountries)
	return out, err
}

func (s *AppState) UpdateCountry(ctx context.Context, id int64, in country.Input) (country.Country, error) {
	var out country.Country
	err := s.mutate(ctx, "UpdateCountry", MsgCountryUpdated, MsgUpdateCountryFailed, func(ctx context.Context) error {
		var err error
		out, err = s.countries.UpdateCountry(ctx, id, in)
		return err
	}, s.refreshCountries)
	return out, err
}

func (s *AppState) DeleteCountry(ctx context.Context, id int64) error {
	return s.mutate(ctx, "DeleteCountry", MsgCountryDeleted, MsgDeleteCountryFailed, func(ctx context.Context) error {
		return s.countries.DeleteCountry(ctx, id)
	}, s.refreshCountries)
}

func (s *AppState) CreateCompetition(ctx context.Context, in competition.Input) (competition.Competition, error) {
	var out competition.Competition
	err := s.mutate(ctx, "CreateCompetition", MsgCompetitionCreated, MsgCreateCompFailed, func(ctx context.Context) error {
		var err error
		out, err = s.competitions.CreateCompetition(ctx, in)
		return err
	}, s.refreshCompetitions)
	return out, err
}

func (s *AppState) UpdateCompetition(ctx context.Context, id int64, in competition.Input) (competition.Competition, error) {
	var out competition.Competition
	err := s.mutate(ctx, "UpdateCompetition", MsgCompetitionUpdated, MsgUpdateCompFailed, func(ctx context.Context) error {
		var err error
		out, err = s.competitions.UpdateCompetition(ctx, id, in)
		return err
	}, s.refreshCompetitions)
	return out, err
}

func (s *AppState) DeleteCompetition(ctx context.Context, id int64) error {
	return s.mutate(ctx, "DeleteCompetition", MsgCompetitionDeleted, MsgDeleteCompFailed, func(ctx context.Context) error {
		return s.competitions.DeleteCompetition(ctx, id)
	}, s.refreshCompetitions)
}

func (s *AppState) AddParticipants(ctx context.Context, competitionID int64, in competition.ParticipantsInput) error {
	return s.mutate(ctx, "AddParticipants", MsgParticipantsAdded, MsgAddParticipantsFailed, func(ctx context.Context) error {
		return s.competitions.AddParticipants(ctx, competitionID, in)
	}, s.refreshCompetitions)
}

func (s *AppState) RemoveParticipant(ctx context.Context, competitionID, countryID int64) error {
	return s.mutate(ctx, "RemoveParticipant", MsgParticipantRemoved, MsgRemoveParticipantFail, func(ctx context.Context) error {
		return s.competitions.RemoveParticipant(ctx, competitionID, countryID)
	}, s.refreshCompetitions)
}

func (s *AppState) CreateMatch(ctx context.Context, in match.Input) (match.Match, error) {
	var out match.Match
	err := s.mutate(ctx, "CreateMatch", MsgMatchCreated, MsgCreateMatchFailed, func(ctx context.Context) error {
		var err error
		out, err = s.matches.CreateMatch(ctx, in)
		return err
	}, s.Refresh)
	return out, err
}

func (s *AppState) SimulateMatch(ctx context.Context, id int64) (match.Match, error) {
	var out match.Match
	err := s.mutate(ctx, "SimulateMatch", MsgMatchSimulated, MsgSimulateMatchFailed, func(ctx context.Context) error {
		var err error
		out, err = s.matches.SimulateMatch(ctx, id)
		return err
	}, s.Refresh)
	return out, err
}

func (s *AppState) UpdateMatchResult(ctx context.Context, id int64, in match.ResultInput) (match.Match, error) {
	var out match.Match
	err := s.mutate(ctx, "UpdateMatchResult", MsgMatchResultUpdated, MsgUpdateResultFailed, func(ctx context.Context) error {
		var err error
		out, err = s.matches.UpdateMatchResult(ctx, id, in)
		return err
	}, s.Refresh)
	return out, err
}

func (s *AppState) DeleteMatch(ctx context.Context, id int64) error {
	return s.mutate(ctx, "DeleteMatch", MsgMatchDeleted, MsgDeleteMatchFailed, func(ctx context.Context) error {
		return s.matches.DeleteMatch(ctx, id)
	}, s.Refresh)
}

// AddMatchEvent records an event. Dashboard lists do not show events, so
// nothing is refreshed.
func (s *AppState) AddMatchEvent(ctx context.Context, matchID int64, in match.EventInput) (match.Event, error) {
	var out match.Event
	err := s.mutate(ctx, "AddMatchEvent", MsgEventAdded, MsgAddEventFailed, func(ctx context.Context) error {
		var err error
		out, err = s.matches.AddMatchEvent(ctx, matchID, in)
		return err
	}, nil)
	return out, err
}

package usecase

import (
	"context"
	"strconv"
	"sync"

	"github.com/riskibarqy/football-ranking/internal/domain/competition"
	"github.com/riskibarqy/football-ranking/internal/domain/country"
	"github.com/riskibarqy/football-ranking/internal/domain/match"
	"github.com/riskibarqy/football-ranking/internal/domain/page"
	"github.com/riskibarqy/football-ranking/internal/platform/logging"
	"github.com/riskibarqy/football-ranking/internal/platform/notify"
)

// Default limits of the fixed size match and history lists.
const (
	DefaultHistoryLimit    = 10
	DefaultHeadToHeadLimit = 10
	DefaultFeedLimit       = 10
)

type QueryDeps struct {
	Countries    country.API
	Competitions competition.API
	Matches      match.API
	Notifier     notify.Notifier
	Logger       *logging.Logger
}

// Queries builds the list and detail queries of every view.
type Queries struct {
	countries    country.API
	competitions competition.API
	matches      match.API
	notifier     notify.Notifier
	logger       *logging.Logger
}

func NewQueries(deps QueryDeps) *Queries {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Default()
	}
	notifier := deps.Notifier
	if notifier == nil {
		notifier = notify.Discard
	}
	return &Queries{
		countries:    deps.Countries,
		competitions: deps.Competitions,
		matches:      deps.Matches,
		notifier:     notifier,
		logger:       logger,
	}
}

func (f *Queries) config(name, failure string, base page.Params, limit int) QueryConfig {
	return QueryConfig{
		Name:           name,
		FailureMessage: failure,
		Base:           base,
		DefaultLimit:   limit,
		Notifier:       f.notifier,
		Logger:         f.logger,
	}
}

func (f *Queries) Countries(base page.Params) *ListQuery[country.Country] {
	return NewListQuery(f.config("countries", MsgFetchCountriesFailed, base, page.DefaultLimit), f.countries.ListCountries)
}

func (f *Queries) Country(id int64) *DetailQuery[country.Country] {
	return NewDetailQuery(f.config("country", MsgFetchCountryFailed, nil, 0), id, f.countries.GetCountry)
}

func (f *Queries) WorldRankings(base page.Params) *ListQuery[country.Country] {
	return NewListQuery(f.config("world_rankings", MsgFetchWorldRankingsFailed, base, page.DefaultRankLimit), f.countries.WorldRankings)
}

// RankingHistory lists the newest limit snapshots of one country.
func (f *Queries) RankingHistory(countryID int64, limit int) *ListQuery[country.RankingHistoryEntry] {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	q := NewListQuery(
		f.config("ranking_history", MsgFetchRankingHistoryFailed, nil, limit),
		func(ctx context.Context, _ page.Params) page.Result[country.RankingHistoryEntry] {
			return f.countries.RankingHistory(ctx, countryID, limit)
		},
	)
	q.ready = func() bool { return countryID != 0 }
	return q
}

func (f *Queries) Competitions(base page.Params) *ListQuery[competition.Competition] {
	return NewListQuery(f.config("competitions", MsgFetchCompetitionsFailed, base, page.DefaultLimit), f.competitions.ListCompetitions)
}

func (f *Queries) Competition(id int64) *DetailQuery[competition.Competition] {
	return NewDetailQuery(f.config("competition", MsgFetchCompetitionFailed, nil, 0), id, f.competitions.GetCompetition)
}

func (f *Queries) Standings(competitionID int64) *ListQuery[competition.Standing] {
	q := NewListQuery(
		f.config("standings", MsgFetchStandingsFailed, nil, page.DefaultLimit),
		func(ctx context.Context, _ page.Params) page.Result[competition.Standing] {
			return f.competitions.Standings(ctx, competitionID)
		},
	)
	q.ready = func() bool { return competitionID != 0 }
	return q
}

func (f *Queries) CompetitionStatistics(competitionID int64) *DetailQuery[competition.Statistics] {
	return NewDetailQuery(f.config("competition_statistics", MsgFetchStatisticsFailed, nil, 0), competitionID, f.competitions.CompetitionStatistics)
}

func (f *Queries) CompetitionMatches(competitionID int64, base page.Params) *ListQuery[match.Match] {
	q := NewListQuery(
		f.config("competition_matches", MsgFetchMatchesFailed, base, page.DefaultLimit),
		func(ctx context.Context, params page.Params) page.Result[match.Match] {
			return f.competitions.CompetitionMatches(ctx, competitionID, params)
		},
	)
	q.ready = func() bool { return competitionID != 0 }
	return q
}

func (f *Queries) Matches(base page.Params) *ListQuery[match.Match] {
	return NewListQuery(f.config("matches", MsgFetchMatchesFailed, base, page.DefaultLimit), f.matches.ListMatches)
}

// CountryMatches lists the matches of one country.
func (f *Queries) CountryMatches(countryID int64, base page.Params) *ListQuery[match.Match] {
	base = page.Merge(base, page.Params{page.KeyCountryID: strconv.FormatInt(countryID, 10)})
	q := f.Matches(base)
	q.ready = func() bool { return countryID != 0 }
	return q
}

func (f *Queries) Match(id int64) *DetailQuery[match.Match] {
	return NewDetailQuery(f.config("match", MsgFetchMatchFailed, nil, 0), id, f.matches.GetMatch)
}

func (f *Queries) HeadToHead(id1, id2 int64, limit int) *ListQuery[match.Match] {
	if limit <= 0 {
		limit = DefaultHeadToHeadLimit
	}
	q := NewListQuery(
		f.config("head_to_head", MsgFetchHeadToHeadFailed, nil, limit),
		func(ctx context.Context, _ page.Params) page.Result[match.Match] {
			return f.matches.HeadToHead(ctx, id1, id2, limit)
		},
	)
	q.ready = func() bool { return id1 != 0 && id2 != 0 }
	return q
}

func (f *Queries) UpcomingMatches(limit int) *ListQuery[match.Match] {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	return NewListQuery(
		f.config("upcoming_matches", MsgFetchMatchesFailed, nil, limit),
		func(ctx context.Context, _ page.Params) page.Result[match.Match] {
			return f.matches.UpcomingMatches(ctx, limit)
		},
	)
}

func (f *Queries) RecentMatches(limit int) *ListQuery[match.Match] {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	return NewListQuery(
		f.config("recent_matches", MsgFetchMatchesFailed, nil, limit),
		func(ctx context.Context, _ page.Params) page.Result[match.Match] {
			return f.matches.RecentMatches(ctx, limit)
		},
	)
}

func (f *Queries) MatchEvents(matchID int64) *ListQuery[match.Event] {
	q := NewListQuery(
		f.config("match_events", MsgFetchMatchEventsFailed, nil, page.DefaultLimit),
		func(ctx context.Context, _ page.Params) page.Result[match.Event] {
			return f.matches.MatchEvents(ctx, matchID)
		},
	)
	q.ready = func() bool { return matchID != 0 }
	return q
}

// ConfederationRankingsQuery is a ranking list scoped to one confederation.
// With no confederation selected it does not call the API.
type ConfederationRankingsQuery struct {
	*ListQuery[country.Country]

	mu   sync.RWMutex
	code string
}

func (f *Queries) ConfederationRankings(code string, base page.Params) *ConfederationRankingsQuery {
	q := &ConfederationRankingsQuery{code: code}
	q.ListQuery = NewListQuery(
		f.config("confederation_rankings", MsgFetchConfederationRankingsFailed, base, page.DefaultRankLimit),
		func(ctx context.Context, params page.Params) page.Result[country.Country] {
			return f.countries.ConfederationRankings(ctx, q.Confederation(), params)
		},
	)
	q.ready = func() bool { return q.Confederation() != "" }
	return q
}

func (q *ConfederationRankingsQuery) Confederation() string {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.code
}

// SetConfederation switches confederation and reloads from the first page.
func (q *ConfederationRankingsQuery) SetConfederation(ctx context.Context, code string) ListState[country.Country] {
	q.mu.Lock()
	q.code = code
	q.mu.Unlock()
	return q.Fetch(ctx, page.Params{page.KeyPage: strconv.Itoa(page.DefaultPage)})
}

// Stats returns the statistics of the last successful response, if any.
func (q *ConfederationRankingsQuery) Stats() *country.ConfederationStats {
	switch stats := q.State().Extra.(type) {
	case *country.ConfederationStats:
		return stats
	case country.ConfederationStats:
		return &stats
	default:
		return nil
	}
}

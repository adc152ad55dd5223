package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-ranking/internal/domain/competition"
	"github.com/riskibarqy/football-ranking/internal/domain/country"
	"github.com/riskibarqy/football-ranking/internal/domain/match"
	"github.com/riskibarqy/football-ranking/internal/domain/page"
	competitionmock "github.com/riskibarqy/football-ranking/internal/mocks/domain/competition"
	countrymock "github.com/riskibarqy/football-ranking/internal/mocks/domain/country"
	matchmock "github.com/riskibarqy/football-ranking/internal/mocks/domain/match"
	"github.com/riskibarqy/football-ranking/internal/platform/notify"
)

type appStateFixture struct {
	countries    *countrymock.API
	competitions *competitionmock.API
	matches      *matchmock.API
	recorder     *notify.Recorder
	state        *AppState
}

func newAppStateFixture(t *testing.T) appStateFixture {
	t.Helper()
	f := appStateFixture{
		countries:    countrymock.NewAPI(t),
		competitions: competitionmock.NewAPI(t),
		matches:      matchmock.NewAPI(t),
		recorder:     &notify.Recorder{},
	}
	f.state = NewAppState(AppStateDeps{
		Countries:    f.countries,
		Competitions: f.competitions,
		Matches:      f.matches,
		Notifier:     f.recorder,
	})
	t.Cleanup(f.state.Close)
	return f
}

var dashboardCountryParams = page.Params{page.KeyLimit: "50"}

func countriesPage(items ...country.Country) page.Result[country.Country] {
	return page.Ok(page.Page[country.Country]{Items: items, Pagination: page.Pagination{Page: 1, Limit: 50, Total: len(items)}})
}

func matchesPage(items ...match.Match) page.Result[match.Match] {
	return page.Ok(page.Page[match.Match]{Items: items, Pagination: page.Empty(5)})
}

func (f appStateFixture) expectDashboard(countries page.Result[country.Country], recent, upcoming page.Result[match.Match]) {
	f.countries.On("ListCountries", mock.Anything, dashboardCountryParams).Return(countries).Once()
	f.matches.On("RecentMatches", mock.Anything, DashboardMatchesLimit).Return(recent).Once()
	f.matches.On("UpcomingMatches", mock.Anything, DashboardMatchesLimit).Return(upcoming).Once()
}

func TestAppState_StartLoadsDashboard(t *testing.T) {
	f := newAppStateFixture(t)
	f.expectDashboard(
		countriesPage(country.Country{ID: 1, Name: "Argentina"}),
		matchesPage(match.Match{ID: 10}),
		matchesPage(match.Match{ID: 11}, match.Match{ID: 12}),
	)

	require.True(t, f.state.InitialLoading())
	require.NoError(t, f.state.Start(context.Background()))
	require.False(t, f.state.InitialLoading())

	snap := f.state.Snapshot()
	require.Len(t, snap.Countries, 1)
	require.Len(t, snap.RecentMatches, 1)
	require.Len(t, snap.UpcomingMatches, 2)
	require.Empty(t, f.recorder.All())
}

func TestAppState_StartKeepsPartialSuccess(t *testing.T) {
	f := newAppStateFixture(t)
	f.expectDashboard(
		page.Fail[country.Country](&NetworkError{Method: "GET", Path: "/countries", Err: errors.New("refused")}),
		matchesPage(match.Match{ID: 10}),
		matchesPage(),
	)

	err := f.state.Start(context.Background())
	require.ErrorIs(t, err, ErrNetwork)
	require.False(t, f.state.InitialLoading())

	snap := f.state.Snapshot()
	require.Empty(t, snap.Countries)
	require.Len(t, snap.RecentMatches, 1)
	require.Equal(t, []string{MsgLoadInitialDataFailed}, f.recorder.Messages(notify.LevelError))
}

func TestAppState_CreateCountryRefreshesCountries(t *testing.T) {
	f := newAppStateFixture(t)
	in := country.Input{Name: "Testland", Code: "TST", Confederation: country.ConfederationUEFA}
	created := country.Country{ID: 99, Name: "Testland", Code: "TST"}

	f.countries.On("CreateCountry", mock.Anything, in).Return(created, nil).Once()
	f.countries.On("ListCountries", mock.Anything, dashboardCountryParams).Return(countriesPage(created)).Once()

	got, err := f.state.CreateCountry(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, int64(99), got.ID)
	require.False(t, f.state.Loading())
	require.Equal(t, []string{MsgCountryCreated}, f.recorder.Messages(notify.LevelSuccess))
	require.Len(t, f.state.Snapshot().Countries, 1)
}

func TestAppState_MutationFailureUsesServerMessage(t *testing.T) {
	f := newAppStateFixture(t)
	in := country.Input{Name: "Testland", Code: "TST", Confederation: country.ConfederationUEFA}

	f.countries.On("CreateCountry", mock.Anything, in).
		Return(country.Country{}, &APIError{StatusCode: 409, Message: "Country code already exists"}).
		Once()

	_, err := f.state.CreateCountry(context.Background(), in)
	require.ErrorIs(t, err, ErrAPI)
	require.False(t, f.state.Loading())
	require.Equal(t, []string{"Country code already exists"}, f.recorder.Messages(notify.LevelError))
	require.Empty(t, f.recorder.Messages(notify.LevelSuccess))
}

func TestAppState_MutationFailureFallsBackToFixedMessage(t *testing.T) {
	f := newAppStateFixture(t)
	f.competitions.On("DeleteCompetition", mock.Anything, int64(3)).
		Return(&NetworkError{Method: "DELETE", Path: "/competitions/3", Err: errors.New("timeout")}).
		Once()

	err := f.state.DeleteCompetition(context.Background(), 3)
	require.ErrorIs(t, err, ErrNetwork)
	require.Equal(t, []string{MsgDeleteCompFailed}, f.recorder.Messages(notify.LevelError))
}

func TestAppState_RefreshFailureDoesNotFailMutation(t *testing.T) {
	f := newAppStateFixture(t)
	f.competitions.On("CreateCompetition", mock.Anything, mock.AnythingOfType("competition.Input")).
		Return(competition.Competition{ID: 5}, nil).
		Once()
	f.competitions.On("ListCompetitions", mock.Anything, page.Params(nil)).
		Return(page.Fail[competition.Competition](errors.New("unavailable"))).
		Once()

	_, err := f.state.CreateCompetition(context.Background(), competition.Input{Name: "Cup"})
	require.NoError(t, err)
	require.Equal(t, []string{MsgCompetitionCreated}, f.recorder.Messages(notify.LevelSuccess))
	require.Equal(t, []string{MsgFetchCompetitionsFailed}, f.recorder.Messages(notify.LevelError))
}

func TestAppState_MatchMutationsRefreshDashboard(t *testing.T) {
	f := newAppStateFixture(t)
	score := 2
	simulated := match.Match{ID: 7, Status: match.StatusFinished, ScoreHome: &score, ScoreAway: &score}

	f.matches.On("SimulateMatch", mock.Anything, int64(7)).Return(simulated, nil).Once()
	f.expectDashboard(countriesPage(), matchesPage(simulated), matchesPage())

	got, err := f.state.SimulateMatch(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, match.StatusFinished, got.Status)
	require.Equal(t, int64(7), f.state.Snapshot().RecentMatches[0].ID)
	require.Equal(t, []string{MsgMatchSimulated}, f.recorder.Messages(notify.LevelSuccess))
}

func TestAppState_MutationRefreshDoesNotJoinEarlierLoad(t *testing.T) {
	f := newAppStateFixture(t)
	score := 1
	scheduled := match.Match{ID: 7, Status: match.StatusScheduled}
	finished := match.Match{ID: 7, Status: match.StatusFinished, ScoreHome: &score, ScoreAway: &score}

	entered := make(chan struct{})
	release := make(chan struct{})
	f.countries.On("ListCountries", mock.Anything, dashboardCountryParams).Return(countriesPage()).Twice()
	f.matches.On("UpcomingMatches", mock.Anything, DashboardMatchesLimit).Return(matchesPage()).Twice()
	f.matches.On("RecentMatches", mock.Anything, DashboardMatchesLimit).
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(matchesPage(scheduled)).
		Once()
	f.matches.On("RecentMatches", mock.Anything, DashboardMatchesLimit).Return(matchesPage(finished)).Once()
	f.matches.On("SimulateMatch", mock.Anything, int64(7)).Return(finished, nil).Once()

	earlier := make(chan error, 1)
	go func() { earlier <- f.state.Refresh(context.Background()) }()
	<-entered

	_, err := f.state.SimulateMatch(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, match.StatusFinished, f.state.Snapshot().RecentMatches[0].Status)

	close(release)
	require.NoError(t, <-earlier)
	require.Equal(t, match.StatusFinished, f.state.Snapshot().RecentMatches[0].Status)
}

func TestAppState_RemoveParticipantRefreshesCompetitions(t *testing.T) {
	f := newAppStateFixture(t)
	f.competitions.On("RemoveParticipant", mock.Anything, int64(3), int64(9)).Return(nil).Once()
	f.competitions.On("ListCompetitions", mock.Anything, page.Params(nil)).
		Return(page.Ok(page.Page[competition.Competition]{Items: []competition.Competition{{ID: 3}}})).
		Once()

	require.NoError(t, f.state.RemoveParticipant(context.Background(), 3, 9))
	require.Len(t, f.state.Snapshot().Competitions, 1)
	require.Equal(t, []string{MsgParticipantRemoved}, f.recorder.Messages(notify.LevelSuccess))
}

func TestAppState_AddMatchEventSkipsRefresh(t *testing.T) {
	f := newAppStateFixture(t)
	f.matches.On("AddMatchEvent", mock.Anything, int64(4), mock.AnythingOfType("match.EventInput")).
		Return(match.Event{}, &APIError{StatusCode: 400, Message: "Country is not playing in this match"}).
		Once()

	_, err := f.state.AddMatchEvent(context.Background(), 4, match.EventInput{CountryID: 1, Type: match.EventGoal})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Equal(t, []string{"Country is not playing in this match"}, f.recorder.Messages(notify.LevelError))
}

func TestAppState_SnapshotReturnsCopies(t *testing.T) {
	f := newAppStateFixture(t)
	f.countries.On("ListCountries", mock.Anything, page.Params{}).Return(countriesPage(country.Country{ID: 1, Name: "Brazil"})).Once()

	_, err := f.state.FetchCountries(context.Background(), page.Params{})
	require.NoError(t, err)

	snap := f.state.Snapshot()
	snap.Countries[0].Name = "changed"
	require.Equal(t, "Brazil", f.state.Snapshot().Countries[0].Name)
}

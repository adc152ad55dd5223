package fakeapi_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-ranking/external/rankingapi"
	"github.com/riskibarqy/football-ranking/internal/domain/competition"
	"github.com/riskibarqy/football-ranking/internal/domain/country"
	"github.com/riskibarqy/football-ranking/internal/domain/match"
	"github.com/riskibarqy/football-ranking/internal/domain/page"
	"github.com/riskibarqy/football-ranking/internal/infrastructure/fakeapi"
	"github.com/riskibarqy/football-ranking/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-ranking/internal/platform/logging"
	"github.com/riskibarqy/football-ranking/internal/platform/notify"
	"github.com/riskibarqy/football-ranking/internal/usecase"
)

func newClient(t *testing.T) *rankingapi.Client {
	t.Helper()

	srv := httptest.NewServer(fakeapi.NewSeeded(logging.NewNop()).Router())
	t.Cleanup(srv.Close)

	return rankingapi.NewClient(rankingapi.ClientConfig{
		BaseURL: srv.URL + "/api",
		Logger:  logging.NewNop(),
	})
}

func newState(t *testing.T, client *rankingapi.Client, recorder *notify.Recorder) *usecase.AppState {
	t.Helper()

	state := usecase.NewAppState(usecase.AppStateDeps{
		Countries:    client,
		Competitions: client,
		Matches:      client,
		Notifier:     recorder,
		Logger:       logging.NewNop(),
	})
	t.Cleanup(state.Close)
	return state
}

func TestRoundTrip_StartLoadsDashboard(t *testing.T) {
	client := newClient(t)
	recorder := &notify.Recorder{}
	state := newState(t, client, recorder)

	require.NoError(t, state.Start(context.Background()))

	snap := state.Snapshot()
	require.Len(t, snap.Countries, 6)
	require.Equal(t, "Argentina", snap.Countries[0].Name)
	require.Len(t, snap.RecentMatches, 1)
	require.Len(t, snap.UpcomingMatches, 2)
	require.Equal(t, int64(3), snap.UpcomingMatches[0].ID)
	require.Empty(t, recorder.Messages(notify.LevelError))
}

func TestRoundTrip_CountryMutationsRefreshCountries(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)
	recorder := &notify.Recorder{}
	state := newState(t, client, recorder)

	created, err := state.CreateCountry(ctx, country.Input{
		Name:          "Brazil",
		Code:          "bra",
		Confederation: country.ConfederationCONMEBOL,
		FIFAPoints:    1870.5,
	})
	require.NoError(t, err)
	require.Equal(t, "BRA", created.Code)
	require.Equal(t, 1, created.WorldRanking)
	require.Len(t, state.Snapshot().Countries, 7)

	_, err = state.CreateCountry(ctx, country.Input{Name: "Brazil B", Code: "BRA", Confederation: country.ConfederationCONMEBOL})
	require.Error(t, err)
	var apiErr *usecase.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 409, apiErr.StatusCode)
	require.Equal(t, "Country code already exists", usecase.ServerMessage(err))

	require.NoError(t, state.DeleteCountry(ctx, created.ID))
	require.Len(t, state.Snapshot().Countries, 6)

	require.Equal(t, []string{usecase.MsgCountryCreated, usecase.MsgCountryDeleted}, recorder.Messages(notify.LevelSuccess))
	require.Len(t, recorder.Messages(notify.LevelError), 1)
}

func TestRoundTrip_NotFoundMapsToSentinel(t *testing.T) {
	client := newClient(t)

	_, err := client.GetCountry(context.Background(), 999)
	require.Error(t, err)
	require.True(t, errors.Is(err, usecase.ErrNotFound))
	require.Equal(t, "Country not found", usecase.ErrorMessage(err, usecase.GenericErrorMessage))
}

func TestRoundTrip_PaginationAndFilters(t *testing.T) {
	client := newClient(t)

	pg, err := client.ListCountries(context.Background(), page.Params{
		page.KeyLimit:         "1",
		page.KeyPage:          "2",
		page.KeyConfederation: "UEFA",
	}).Unwrap()
	require.NoError(t, err)
	require.Len(t, pg.Items, 1)
	require.Equal(t, "Spain", pg.Items[0].Name)
	require.Equal(t, page.Pagination{Page: 2, Limit: 1, Total: 2}, pg.Pagination)
}

func TestRoundTrip_ConfederationStats(t *testing.T) {
	queries := usecase.NewQueries(usecase.QueryDeps{
		Countries: newClient(t),
		Logger:    logging.NewNop(),
	})

	q := queries.ConfederationRankings("AFC", nil)
	defer q.Close()
	state := q.Refetch(context.Background())
	require.NoError(t, state.Err)
	require.Len(t, state.Items, 2)

	stats := q.Stats()
	require.NotNil(t, stats)
	require.EqualValues(t, 2, stats.TotalCountries)
	require.Equal(t, "1,641.08", stats.MaxPoints.String())
}

func TestRoundTrip_SimulateMatchUpdatesStandingsAndHistory(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)
	state := newState(t, client, &notify.Recorder{})

	played, err := state.SimulateMatch(ctx, 2)
	require.NoError(t, err)
	require.True(t, played.Played())
	require.Equal(t, match.StatusFinished, played.Status)

	standings, err := client.Standings(ctx, memory.CompetitionIDWorldCup).Unwrap()
	require.NoError(t, err)
	require.Len(t, standings.Items, 2)
	require.Equal(t, 1, standings.Items[0].Played)

	stats, err := client.CompetitionStatistics(ctx, memory.CompetitionIDWorldCup)
	require.NoError(t, err)
	require.Equal(t, 1, stats.FinishedMatches)

	_, err = state.SimulateMatch(ctx, 2)
	require.Error(t, err)
	require.Equal(t, "Match already finished", usecase.ServerMessage(err))
}

func TestRoundTrip_CompetitionParticipants(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)
	state := newState(t, client, &notify.Recorder{})

	err := state.AddParticipants(ctx, memory.CompetitionIDWorldCup, competition.ParticipantsInput{
		CountryIDs: []int64{memory.CountryIDSpain, memory.CountryIDMorocco},
		GroupName:  "B",
	})
	require.NoError(t, err)

	comp, err := client.GetCompetition(ctx, memory.CompetitionIDWorldCup)
	require.NoError(t, err)
	require.Equal(t, 4, comp.ParticipantCount)

	require.NoError(t, client.RemoveParticipant(ctx, memory.CompetitionIDWorldCup, memory.CountryIDSpain))
	comp, err = client.GetCompetition(ctx, memory.CompetitionIDWorldCup)
	require.NoError(t, err)
	require.Equal(t, 3, comp.ParticipantCount)
}

func TestRoundTrip_MatchEventsAndHeadToHead(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)

	event, err := client.AddMatchEvent(ctx, 3, match.EventInput{
		CountryID:  memory.CountryIDJapan,
		Type:       match.EventGoal,
		Minute:     12,
		PlayerName: "T. Kubo",
	})
	require.NoError(t, err)
	require.Equal(t, "Japan", event.CountryName)

	events, err := client.MatchEvents(ctx, 3).Unwrap()
	require.NoError(t, err)
	require.Len(t, events.Items, 1)

	h2h, err := client.HeadToHead(ctx, memory.CountryIDFrance, memory.CountryIDArgentina, 10).Unwrap()
	require.NoError(t, err)
	require.Len(t, h2h.Items, 2)

	cmp, err := client.CompareCountries(ctx, memory.CountryIDArgentina, memory.CountryIDFrance)
	require.NoError(t, err)
	require.NotNil(t, cmp.HeadToHead)
	require.Equal(t, 1, cmp.HeadToHead.Country1Wins)
}

func TestRoundTrip_Health(t *testing.T) {
	health, err := newClient(t).Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, "OK", health.Status)
	require.Equal(t, "memory", health.Database)
}

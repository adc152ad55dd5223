package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-ranking/internal/domain/country"
	"github.com/riskibarqy/football-ranking/internal/domain/page"
	countrymock "github.com/riskibarqy/football-ranking/internal/mocks/domain/country"
)

func TestConfederationRankings_EmptyCodeSkipsAPI(t *testing.T) {
	api := countrymock.NewAPI(t)
	queries := NewQueries(QueryDeps{Countries: api})

	q := queries.ConfederationRankings("", nil)
	state := q.Fetch(context.Background(), nil)

	require.False(t, state.Loading)
	require.NoError(t, state.Err)
	require.Nil(t, q.Stats())
}

func TestConfederationRankings_SwitchResetsPageAndExposesStats(t *testing.T) {
	api := countrymock.NewAPI(t)
	stats := &country.ConfederationStats{TotalCountries: 55, AvgPoints: 1402.5}
	api.On("ConfederationRankings", mock.Anything, "UEFA", page.Params{page.KeyLimit: "50", page.KeyPage: "1"}).
		Return(page.Ok(page.Page[country.Country]{
			Items:      []country.Country{{ID: 1, Name: "France", ConfederationRanking: 1}},
			Pagination: page.Pagination{Page: 1, Limit: 50, Total: 55},
			Extra:      stats,
		})).
		Once()

	queries := NewQueries(QueryDeps{Countries: api})
	q := queries.ConfederationRankings("", page.Params{page.KeyLimit: "50"})

	state := q.SetConfederation(context.Background(), "UEFA")
	require.NoError(t, state.Err)
	require.Len(t, state.Items, 1)
	require.EqualValues(t, 55, q.Stats().TotalCountries)
	require.Equal(t, "UEFA", q.Confederation())
}

func TestRankingHistory_ZeroIDSkipsAPI(t *testing.T) {
	queries := NewQueries(QueryDeps{Countries: countrymock.NewAPI(t)})
	state := queries.RankingHistory(0, 0).Fetch(context.Background(), nil)
	require.False(t, state.Loading)
	require.Empty(t, state.Items)
}

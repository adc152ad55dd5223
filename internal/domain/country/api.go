package country

import (
	"context"

	"github.com/riskibarqy/football-ranking/internal/domain/page"
)

// API is the remote country resource.
type API interface {
	ListCountries(ctx context.Context, params page.Params) page.Result[Country]
	GetCountry(ctx context.Context, id int64) (Country, error)
	CreateCountry(ctx context.Context, in Input) (Country, error)
	UpdateCountry(ctx context.Context, id int64, in Input) (Country, error)
	DeleteCountry(ctx context.Context, id int64) error
	WorldRankings(ctx context.Context, params page.Params) page.Result[Country]
	// ConfederationRankings carries *ConfederationStats in Page.Extra.
	ConfederationRankings(ctx context.Context, confederation string, params page.Params) page.Result[Country]
	RankingHistory(ctx context.Context, id int64, limit int) page.Result[RankingHistoryEntry]
	CompareCountries(ctx context.Context, id1, id2 int64) (Comparison, error)
}

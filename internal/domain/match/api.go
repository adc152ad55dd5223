package match

import (
	"context"

	"github.com/riskibarqy/football-ranking/internal/domain/page"
)

type API interface {
	ListMatches(ctx context.Context, params page.Params) page.Result[Match]
	GetMatch(ctx context.Context, id int64) (Match, error)
	CreateMatch(ctx context.Context, in Input) (Match, error)
	DeleteMatch(ctx context.Context, id int64) error
	SimulateMatch(ctx context.Context, id int64) (Match, error)
	UpdateMatchResult(ctx context.Context, id int64, in ResultInput) (Match, error)
	HeadToHead(ctx context.Context, id1, id2 int64, limit int) page.Result[Match]
	UpcomingMatches(ctx context.Context, limit int) page.Result[Match]
	RecentMatches(ctx context.Context, limit int) page.Result[Match]
	MatchEvents(ctx context.Context, id int64) page.Result[Event]
	AddMatchEvent(ctx context.Context, id int64, in EventInput) (Event, error)
}

package rankingapi

import (
	"context"
	"strconv"

	"github.com/riskibarqy/football-ranking/internal/domain/match"
	"github.com/riskibarqy/football-ranking/internal/domain/page"
)

const defaultMatchFeedLimit = 10

var _ match.API = (*Client)(nil)

func limitParams(limit int) (page.Params, int) {
	if limit <= 0 {
		limit = defaultMatchFeedLimit
	}
	return page.Params{page.KeyLimit: strconv.Itoa(limit)}, limit
}

func (c *Client) ListMatches(ctx context.Context, params page.Params) page.Result[match.Match] {
	return listPage[match.Match](ctx, c, "ListMatches", "/matches", params, page.DefaultLimit)
}

func (c *Client) GetMatch(ctx context.Context, id int64) (match.Match, error) {
	return getData[match.Match](ctx, c, "GetMatch", idPath("/matches/%d", id))
}

func (c *Client) CreateMatch(ctx context.Context, in match.Input) (match.Match, error) {
	return sendEnvelope[match.Match](ctx, c, "CreateMatch", "POST", "/matches", in)
}

func (c *Client) DeleteMatch(ctx context.Context, id int64) error {
	_, err := c.do(ctx, "DeleteMatch", "DELETE", idPath("/matches/%d", id), nil, nil)
	return err
}

func (c *Client) SimulateMatch(ctx context.Context, id int64) (match.Match, error) {
	return sendEnvelope[match.Match](ctx, c, "SimulateMatch", "POST", idPath("/matches/%d/simulate", id), nil)
}

func (c *Client) UpdateMatchResult(ctx context.Context, id int64, in match.ResultInput) (match.Match, error) {
	return sendEnvelope[match.Match](ctx, c, "UpdateMatchResult", "PUT", idPath("/matches/%d/result", id), in)
}

func (c *Client) HeadToHead(ctx context.Context, id1, id2 int64, limit int) page.Result[match.Match] {
	params, limit := limitParams(limit)
	return listPage[match.Match](ctx, c, "HeadToHead", idPath("/matches/head-to-head/%d/%d", id1, id2), params, limit)
}

func (c *Client) UpcomingMatches(ctx context.Context, limit int) page.Result[match.Match] {
	params, limit := limitParams(limit)
	return listPage[match.Match](ctx, c, "UpcomingMatches", "/matches/upcoming", params, limit)
}

func (c *Client) RecentMatches(ctx context.Context, limit int) page.Result[match.Match] {
	params, limit := limitParams(limit)
	return listPage[match.Match](ctx, c, "RecentMatches", "/matches/recent", params, limit)
}

func (c *Client) MatchEvents(ctx context.Context, id int64) page.Result[match.Event] {
	return listPage[match.Event](ctx, c, "MatchEvents", idPath("/matches/%d/events", id), nil, page.DefaultLimit)
}

func (c *Client) AddMatchEvent(ctx context.Context, id int64, in match.EventInput) (match.Event, error) {
	return sendEnvelope[match.Event](ctx, c, "AddMatchEvent", "POST", idPath("/matches/%d/events", id), in)
}

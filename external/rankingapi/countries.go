package rankingapi

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/football-ranking/internal/domain/country"
	"github.com/riskibarqy/football-ranking/internal/domain/page"
)

var _ country.API = (*Client)(nil)

func (c *Client) ListCountries(ctx context.Context, params page.Params) page.Result[country.Country] {
	return listPage[country.Country](ctx, c, "ListCountries", "/countries", params, page.DefaultLimit)
}

func (c *Client) GetCountry(ctx context.Context, id int64) (country.Country, error) {
	return getData[country.Country](ctx, c, "GetCountry", idPath("/countries/%d", id))
}

func (c *Client) CreateCountry(ctx context.Context, in country.Input) (country.Country, error) {
	return sendEnvelope[country.Country](ctx, c, "CreateCountry", "POST", "/countries", in)
}

func (c *Client) UpdateCountry(ctx context.Context, id int64, in country.Input) (country.Country, error) {
	return sendEnvelope[country.Country](ctx, c, "UpdateCountry", "PUT", idPath("/countries/%d", id), in)
}

func (c *Client) DeleteCountry(ctx context.Context, id int64) error {
	_, err := c.do(ctx, "DeleteCountry", "DELETE", idPath("/countries/%d", id), nil, nil)
	return err
}

func (c *Client) WorldRankings(ctx context.Context, params page.Params) page.Result[country.Country] {
	return listPage[country.Country](ctx, c, "WorldRankings", "/countries/rankings/world", params, page.DefaultRankLimit)
}

func (c *Client) ConfederationRankings(ctx context.Context, confederation string, params page.Params) page.Result[country.Country] {
	code := strings.ToUpper(strings.TrimSpace(confederation))
	if code == "" {
		return page.Fail[country.Country](crerr.New("confederation is required"))
	}
	path := "/countries/rankings/confederation/" + url.PathEscape(code)
	env, err := getEnvelope[[]country.Country](ctx, c, "ConfederationRankings", path, params)
	if err != nil {
		return page.Fail[country.Country](err)
	}

	var stats *country.ConfederationStats
	if !env.ConfederationStats.empty() {
		stats = &country.ConfederationStats{}
		if err := decode(env.ConfederationStats, stats); err != nil {
			return page.Fail[country.Country](crerr.Wrap(err, "decode confederation stats"))
		}
	}
	result := page.Page[country.Country]{
		Items:      env.Data,
		Pagination: normalizePagination(env.Pagination, params, page.DefaultRankLimit),
	}
	if stats != nil {
		result.Extra = stats
	}
	return page.Ok(result)
}

func (c *Client) RankingHistory(ctx context.Context, id int64, limit int) page.Result[country.RankingHistoryEntry] {
	if limit <= 0 {
		limit = 10
	}
	params := page.Params{page.KeyLimit: strconv.Itoa(limit)}
	return listPage[country.RankingHistoryEntry](ctx, c, "RankingHistory", idPath("/countries/%d/ranking-history", id), params, limit)
}

func (c *Client) CompareCountries(ctx context.Context, id1, id2 int64) (country.Comparison, error) {
	return getData[country.Comparison](ctx, c, "CompareCountries", idPath("/countries/compare/%d/%d", id1, id2))
}

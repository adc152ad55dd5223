package rankingapi

import (
	"context"

	"github.com/riskibarqy/football-ranking/internal/domain/competition"
	"github.com/riskibarqy/football-ranking/internal/domain/match"
	"github.com/riskibarqy/football-ranking/internal/domain/page"
)

var _ competition.API = (*Client)(nil)

func (c *Client) ListCompetitions(ctx context.Context, params page.Params) page.Result[competition.Competition] {
	return listPage[competition.Competition](ctx, c, "ListCompetitions", "/competitions", params, page.DefaultLimit)
}

func (c *Client) GetCompetition(ctx context.Context, id int64) (competition.Competition, error) {
	return getData[competition.Competition](ctx, c, "GetCompetition", idPath("/competitions/%d", id))
}

func (c *Client) CreateCompetition(ctx context.Context, in competition.Input) (competition.Competition, error) {
	return sendEnvelope[competition.Competition](ctx, c, "CreateCompetition", "POST", "/competitions", in)
}

func (c *Client) UpdateCompetition(ctx context.Context, id int64, in competition.Input) (competition.Competition, error) {
	return sendEnvelope[competition.Competition](ctx, c, "UpdateCompetition", "PUT", idPath("/competitions/%d", id), in)
}

func (c *Client) DeleteCompetition(ctx context.Context, id int64) error {
	_, err := c.do(ctx, "DeleteCompetition", "DELETE", idPath("/competitions/%d", id), nil, nil)
	return err
}

func (c *Client) AddParticipants(ctx context.Context, id int64, in competition.ParticipantsInput) error {
	_, err := c.do(ctx, "AddParticipants", "POST", idPath("/competitions/%d/participants", id), nil, in)
	return err
}

func (c *Client) RemoveParticipant(ctx context.Context, competitionID, countryID int64) error {
	_, err := c.do(ctx, "RemoveParticipant", "DELETE", idPath("/competitions/%d/participants/%d", competitionID, countryID), nil, nil)
	return err
}

func (c *Client) Standings(ctx context.Context, id int64) page.Result[competition.Standing] {
	return listPage[competition.Standing](ctx, c, "Standings", idPath("/competitions/%d/standings", id), nil, page.DefaultLimit)
}

func (c *Client) CompetitionStatistics(ctx context.Context, id int64) (competition.Statistics, error) {
	return getData[competition.Statistics](ctx, c, "CompetitionStatistics", idPath("/competitions/%d/statistics", id))
}

func (c *Client) CompetitionMatches(ctx context.Context, id int64, params page.Params) page.Result[match.Match] {
	return listPage[match.Match](ctx, c, "CompetitionMatches", idPath("/competitions/%d/matches", id), params, page.DefaultLimit)
}

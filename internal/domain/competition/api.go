package competition

import (
	"context"

	"github.com/riskibarqy/football-ranking/internal/domain/match"
	"github.com/riskibarqy/football-ranking/internal/domain/page"
)

type API interface {
	ListCompetitions(ctx context.Context, params page.Params) page.Result[Competition]
	GetCompetition(ctx context.Context, id int64) (Competition, error)
	CreateCompetition(ctx context.Context, in Input) (Competition, error)
	UpdateCompetition(ctx context.Context, id int64, in Input) (Competition, error)
	DeleteCompetition(ctx context.Context, id int64) error
	AddParticipants(ctx context.Context, id int64, in ParticipantsInput) error
	RemoveParticipant(ctx context.Context, competitionID, countryID int64) error
	Standings(ctx context.Context, id int64) page.Result[Standing]
	CompetitionStatistics(ctx context.Context, id int64) (Statistics, error)
	CompetitionMatches(ctx context.Context, id int64, params page.Params) page.Result[match.Match]
}

package country

import (
	"strings"

	"github.com/riskibarqy/football-ranking/internal/domain/value"
)

type Confederation string

const (
	ConfederationUEFA     Confederation = "UEFA"
	ConfederationAFC      Confederation = "AFC"
	ConfederationCAF      Confederation = "CAF"
	ConfederationCONCACAF Confederation = "CONCACAF"
	ConfederationCONMEBOL Confederation = "CONMEBOL"
	ConfederationOFC      Confederation = "OFC"
)

// Confederations lists every confederation in display order.
var Confederations = []Confederation{
	ConfederationUEFA,
	ConfederationAFC,
	ConfederationCAF,
	ConfederationCONCACAF,
	ConfederationCONMEBOL,
	ConfederationOFC,
}

var confederationNames = map[Confederation]string{
	ConfederationUEFA:     "Union of European Football Associations",
	ConfederationAFC:      "Asian Football Confederation",
	ConfederationCAF:      "Confederation of African Football",
	ConfederationCONCACAF: "Confederation of North, Central America and Caribbean Association Football",
	ConfederationCONMEBOL: "South American Football Confederation",
	ConfederationOFC:      "Oceania Football Confederation",
}

func ParseConfederation(v string) (Confederation, bool) {
	c := Confederation(strings.ToUpper(strings.TrimSpace(v)))
	_, ok := confederationNames[c]
	return c, ok
}

func (c Confederation) FullName() string {
	if name, ok := confederationNames[c]; ok {
		return name
	}
	return string(c)
}

// Sort keys accepted by the countries list endpoint.
const (
	SortByWorldRanking = "world_ranking"
	SortByName         = "name"
	SortByPoints       = "fifa_points"
)

// Country is a national team with its ranking attributes and recent form.
type Country struct {
	ID                   int64         `json:"id" yaml:"id"`
	Name                 string        `json:"name" yaml:"name"`
	Code                 string        `json:"code" yaml:"code"`
	Confederation        Confederation `json:"confederation" yaml:"confederation"`
	FlagURL              string        `json:"flag_url,omitempty" yaml:"flag_url,omitempty"`
	WorldRanking         int           `json:"world_ranking" yaml:"world_ranking"`
	ConfederationRanking int           `json:"confederation_ranking" yaml:"confederation_ranking"`
	FIFAPoints           value.Decimal `json:"fifa_points" yaml:"fifa_points"`
	WinPercentage        value.Decimal `json:"win_percentage" yaml:"win_percentage"`
	RecentWins           int           `json:"recent_wins" yaml:"recent_wins"`
	RecentDraws          int           `json:"recent_draws" yaml:"recent_draws"`
	RecentLosses         int           `json:"recent_losses" yaml:"recent_losses"`
	// Last10Matches holds W/D/L codes, most recent first.
	Last10Matches string `json:"last_10_matches" yaml:"last_10_matches"`
	// RankingChange is positive when the team climbed.
	RankingChange int `json:"ranking_change,omitempty" yaml:"ranking_change,omitempty"`
}

// Input is the writable part of a country, used for create and update.
type Input struct {
	Name          string        `json:"name" validate:"required,max=100"`
	Code          string        `json:"code" validate:"required,len=3,alpha"`
	Confederation Confederation `json:"confederation" validate:"required,oneof=UEFA AFC CAF CONCACAF CONMEBOL OFC"`
	FlagURL       string        `json:"flag_url,omitempty" validate:"omitempty,url"`
	FIFAPoints    value.Decimal `json:"fifa_points" validate:"gte=0"`
}

// Normalize trims text fields and upper-cases the code and confederation.
func (in Input) Normalize() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	in.Confederation = Confederation(strings.ToUpper(strings.TrimSpace(string(in.Confederation))))
	in.FlagURL = strings.TrimSpace(in.FlagURL)
	return in
}

// InputFrom prefills an edit form from an existing country.
func InputFrom(c Country) Input {
	return Input{
		Name:          c.Name,
		Code:          c.Code,
		Confederation: c.Confederation,
		FlagURL:       c.FlagURL,
		FIFAPoints:    c.FIFAPoints,
	}
}

// ConfederationStats is the summary sent alongside a confederation ranking.
type ConfederationStats struct {
	TotalCountries value.Int     `json:"total_countries" yaml:"total_countries"`
	AvgPoints      value.Decimal `json:"avg_points" yaml:"avg_points"`
	MaxPoints      value.Decimal `json:"max_points" yaml:"max_points"`
	MinPoints      value.Decimal `json:"min_points" yaml:"min_points"`
}

// RankingHistoryEntry is one recorded ranking snapshot, newest first.
type RankingHistoryEntry struct {
	ID           int64         `json:"id" yaml:"id"`
	CountryID    int64         `json:"country_id" yaml:"country_id"`
	WorldRanking int           `json:"world_ranking" yaml:"world_ranking"`
	FIFAPoints   value.Decimal `json:"fifa_points" yaml:"fifa_points"`
	RecordedAt   string        `json:"recorded_at" yaml:"recorded_at"`
}

// Comparison is the side by side view of two countries.
type Comparison struct {
	Country1   Country         `json:"country1" yaml:"country1"`
	Country2   Country         `json:"country2" yaml:"country2"`
	HeadToHead *HeadToHeadStat `json:"head_to_head,omitempty" yaml:"head_to_head,omitempty"`
}

type HeadToHeadStat struct {
	TotalMatches  int `json:"total_matches" yaml:"total_matches"`
	Country1Wins  int `json:"country1_wins" yaml:"country1_wins"`
	Country2Wins  int `json:"country2_wins" yaml:"country2_wins"`
	Draws         int `json:"draws" yaml:"draws"`
	Country1Goals int `json:"country1_goals" yaml:"country1_goals"`
	Country2Goals int `json:"country2_goals" yaml:"country2_goals"`
}

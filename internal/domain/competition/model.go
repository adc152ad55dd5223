package competition

import (
	"strings"

	"github.com/riskibarqy/football-ranking/internal/domain/value"
)

type Type string

const (
	TypeWorld       Type = "world"
	TypeContinental Type = "continental"
)

type Format string

const (
	FormatGroup         Format = "group"
	FormatKnockout      Format = "knockout"
	FormatLeague        Format = "league"
	FormatGroupKnockout Format = "group_knockout"
)

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

var (
	Types    = []Type{TypeWorld, TypeContinental}
	Formats  = []Format{FormatGroup, FormatKnockout, FormatLeague, FormatGroupKnockout}
	Statuses = []Status{StatusUpcoming, StatusOngoing, StatusCompleted}
)

func (t Type) Label() string {
	switch t {
	case TypeWorld:
		return "World Competition"
	case TypeContinental:
		return "Continental Competition"
	default:
		return string(t)
	}
}

func (f Format) Label() string {
	switch f {
	case FormatGroup:
		return "Group Stage"
	case FormatKnockout:
		return "Knockout"
	case FormatLeague:
		return "League"
	case FormatGroupKnockout:
		return "Group + Knockout"
	default:
		return string(f)
	}
}

func (s Status) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Competition is a tournament with a participant set and a schedule.
type Competition struct {
	ID            int64  `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Type          Type   `json:"type" yaml:"type"`
	Format        Format `json:"format" yaml:"format"`
	Status        Status `json:"status" yaml:"status"`
	Confederation string `json:"confederation,omitempty" yaml:"confederation,omitempty"`
	Year          int    `json:"year,omitempty" yaml:"year,omitempty"`
	StartDate     string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate       string `json:"end_date,omitempty" yaml:"end_date,omitempty"`

	// ImportanceFactor weights ranking points earned in this competition.
	ImportanceFactor value.Decimal `json:"importance_factor,omitempty" yaml:"importance_factor,omitempty"`
	Description      string        `json:"description,omitempty" yaml:"description,omitempty"`
	ParticipantCount int           `json:"participant_count,omitempty" yaml:"participant_count,omitempty"`
	Participants     []Participant `json:"participants,omitempty" yaml:"participants,omitempty"`
}

type Participant struct {
	CountryID   int64  `json:"country_id" yaml:"country_id"`
	CountryName string `json:"country_name,omitempty" yaml:"country_name,omitempty"`
	CountryCode string `json:"country_code,omitempty" yaml:"country_code,omitempty"`
	GroupName   string `json:"group_name,omitempty" yaml:"group_name,omitempty"`
}

// Input is the writable part of a competition.
type Input struct {
	Name             string        `json:"name" validate:"required,max=150"`
	Type             Type          `json:"type" validate:"required,oneof=world continental"`
	Format           Format        `json:"format" validate:"required,oneof=group knockout league group_knockout"`
	Status           Status        `json:"status,omitempty" validate:"omitempty,oneof=upcoming ongoing completed"`
	Confederation    string        `json:"confederation,omitempty" validate:"required_if=Type continental,omitempty,oneof=UEFA AFC CAF CONCACAF CONMEBOL OFC"`
	Year             int           `json:"year,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	StartDate        string        `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate          string        `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ImportanceFactor value.Decimal `json:"importance_factor,omitempty" validate:"gte=0"`
	Description      string        `json:"description,omitempty" validate:"max=1000"`
}

// ParticipantsInput adds countries to a competition, optionally into a group.
type ParticipantsInput struct {
	CountryIDs []int64 `json:"country_ids" validate:"required,min=1,dive,gt=0"`
	GroupName  string  `json:"group_name,omitempty" validate:"max=20"`
}

// Standing is one row of a competition table.
type Standing struct {
	Position       int    `json:"position" yaml:"position"`
	CountryID      int64  `json:"country_id" yaml:"country_id"`
	CountryName    string `json:"country_name" yaml:"country_name"`
	CountryCode    string `json:"country_code,omitempty" yaml:"country_code,omitempty"`
	GroupName      string `json:"group_name,omitempty" yaml:"group_name,omitempty"`
	Played         int    `json:"played" yaml:"played"`
	Won            int    `json:"won" yaml:"won"`
	Drawn          int    `json:"drawn" yaml:"drawn"`
	Lost           int    `json:"lost" yaml:"lost"`
	GoalsFor       int    `json:"goals_for" yaml:"goals_for"`
	GoalsAgainst   int    `json:"goals_against" yaml:"goals_against"`
	GoalDifference int    `json:"goal_difference" yaml:"goal_difference"`
	Points         int    `json:"points" yaml:"points"`
}

// Statistics summarises a competition.
type Statistics struct {
	TotalMatches    int           `json:"total_matches" yaml:"total_matches"`
	FinishedMatches int           `json:"finished_matches" yaml:"finished_matches"`
	TotalGoals      int           `json:"total_goals" yaml:"total_goals"`
	AvgGoals        value.Decimal `json:"avg_goals_per_match" yaml:"avg_goals_per_match"`
	HomeWins        int           `json:"home_wins" yaml:"home_wins"`
	AwayWins        int           `json:"away_wins" yaml:"away_wins"`
	Draws           int           `json:"draws" yaml:"draws"`
}

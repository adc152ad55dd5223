package match

import (
	"github.com/riskibarqy/football-ranking/internal/domain/value"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusFinished  Status = "finished"
	StatusPostponed Status = "postponed"
	StatusCancelled Status = "cancelled"
)

var Statuses = []Status{StatusScheduled, StatusLive, StatusFinished, StatusPostponed, StatusCancelled}

type EventType string

const (
	EventGoal         EventType = "goal"
	EventOwnGoal      EventType = "own_goal"
	EventPenaltyGoal  EventType = "penalty_goal"
	EventYellowCard   EventType = "yellow_card"
	EventRedCard      EventType = "red_card"
	EventSubstitution EventType = "substitution"
)

var EventTypes = []EventType{EventGoal, EventOwnGoal, EventPenaltyGoal, EventYellowCard, EventRedCard, EventSubstitution}

func (e EventType) Label() string {
	switch e {
	case EventGoal:
		return "Goal"
	case EventOwnGoal:
		return "Own Goal"
	case EventPenaltyGoal:
		return "Penalty Goal"
	case EventYellowCard:
		return "Yellow Card"
	case EventRedCard:
		return "Red Card"
	case EventSubstitution:
		return "Substitution"
	default:
		return string(e)
	}
}

// IsGoal reports whether the event changes the score.
func (e EventType) IsGoal() bool {
	return e == EventGoal || e == EventOwnGoal || e == EventPenaltyGoal
}

// Importance factors used when creating a match.
const (
	ImportanceFriendly      = 1.0
	ImportanceQualification = 2.5
	ImportanceContinental   = 3.0
	ImportanceWorldCup      = 4.0
)

// Match is a fixture between two countries. Scores stay nil until played.
type Match struct {
	ID               int64         `json:"id" yaml:"id"`
	CompetitionID    *int64        `json:"competition_id,omitempty" yaml:"competition_id,omitempty"`
	CompetitionName  string        `json:"competition_name,omitempty" yaml:"competition_name,omitempty"`
	HomeID           int64         `json:"country_home_id" yaml:"country_home_id"`
	AwayID           int64         `json:"country_away_id" yaml:"country_away_id"`
	HomeName         string        `json:"home_name,omitempty" yaml:"home_name,omitempty"`
	AwayName         string        `json:"away_name,omitempty" yaml:"away_name,omitempty"`
	MatchDate        string        `json:"match_date,omitempty" yaml:"match_date,omitempty"`
	Venue            string        `json:"venue,omitempty" yaml:"venue,omitempty"`
	Status           Status        `json:"status" yaml:"status"`
	ScoreHome        *int          `json:"score_home" yaml:"score_home"`
	ScoreAway        *int          `json:"score_away" yaml:"score_away"`
	ImportanceFactor value.Decimal `json:"importance_factor,omitempty" yaml:"importance_factor,omitempty"`
	Events           []Event       `json:"events,omitempty" yaml:"events,omitempty"`
}

// Played reports whether both scores are known.
func (m Match) Played() bool {
	return m.ScoreHome != nil && m.ScoreAway != nil
}

// Score renders "2 - 1", or "vs" before the match is played.
func (m Match) Score() string {
	if !m.Played() {
		return "vs"
	}
	return itoa(*m.ScoreHome) + " - " + itoa(*m.ScoreAway)
}

type Input struct {
	CompetitionID    *int64        `json:"competition_id,omitempty" validate:"omitempty,gt=0"`
	HomeID           int64         `json:"country_home_id" validate:"required,gt=0"`
	AwayID           int64         `json:"country_away_id" validate:"required,gt=0,nefield=HomeID"`
	MatchDate        string        `json:"match_date" validate:"required"`
	Venue            string        `json:"venue,omitempty" validate:"max=150"`
	ImportanceFactor value.Decimal `json:"importance_factor,omitempty" validate:"gte=0"`
}

// ResultInput sets the final score of a match.
type ResultInput struct {
	ScoreHome int `json:"score_home" validate:"gte=0"`
	ScoreAway int `json:"score_away" validate:"gte=0"`
}

type Event struct {
	ID          int64     `json:"id" yaml:"id"`
	MatchID     int64     `json:"match_id" yaml:"match_id"`
	CountryID   int64     `json:"country_id" yaml:"country_id"`
	CountryName string    `json:"country_name,omitempty" yaml:"country_name,omitempty"`
	Type        EventType `json:"event_type" yaml:"event_type"`
	Minute      int       `json:"minute" yaml:"minute"`
	PlayerName  string    `json:"player_name,omitempty" yaml:"player_name,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
}

type EventInput struct {
	CountryID   int64     `json:"country_id" validate:"required,gt=0"`
	Type        EventType `json:"event_type" validate:"required,oneof=goal own_goal penalty_goal yellow_card red_card substitution"`
	Minute      int       `json:"minute" validate:"gte=0,lte=130"`
	PlayerName  string    `json:"player_name,omitempty" validate:"max=100"`
	Description string    `json:"description,omitempty" validate:"max=255"`
}

package memory

import (
	"github.com/riskibarqy/football-ranking/internal/domain/competition"
	"github.com/riskibarqy/football-ranking/internal/domain/country"
	"github.com/riskibarqy/football-ranking/internal/domain/match"
)

const (
	CountryIDArgentina int64 = 1
	CountryIDFrance    int64 = 2
	CountryIDSpain     int64 = 3
	CountryIDJapan     int64 = 4
	CountryIDMorocco   int64 = 5
	CountryIDIndonesia int64 = 6

	CompetitionIDWorldCup int64 = 1
	CompetitionIDAsianCup int64 = 2
)

func SeedCountries() []country.Country {
	return []country.Country{
		{ID: CountryIDArgentina, Name: "Argentina", Code: "ARG", Confederation: country.ConfederationCONMEBOL, FIFAPoints: 1867.25, Last10Matches: "WWDWWLWWWD"},
		{ID: CountryIDFrance, Name: "France", Code: "FRA", Confederation: country.ConfederationUEFA, FIFAPoints: 1859.78, Last10Matches: "WDWWLWWDWW"},
		{ID: CountryIDSpain, Name: "Spain", Code: "ESP", Confederation: country.ConfederationUEFA, FIFAPoints: 1853.27, Last10Matches: "WWWWDWWLWW"},
		{ID: CountryIDJapan, Name: "Japan", Code: "JPN", Confederation: country.ConfederationAFC, FIFAPoints: 1641.08, Last10Matches: "WWLWDWWWLW"},
		{ID: CountryIDMorocco, Name: "Morocco", Code: "MAR", Confederation: country.ConfederationCAF, FIFAPoints: 1694.24, Last10Matches: "WDWWWDWLWW"},
		{ID: CountryIDIndonesia, Name: "Indonesia", Code: "IDN", Confederation: country.ConfederationAFC, FIFAPoints: 1108.52, Last10Matches: "LWDLWLDWLL"},
	}
}

func SeedCompetitions() []competition.Competition {
	return []competition.Competition{
		{
			ID:               CompetitionIDWorldCup,
			Name:             "FIFA World Cup 2026",
			Type:             competition.TypeWorld,
			Format:           competition.FormatGroupKnockout,
			Status:           competition.StatusUpcoming,
			Year:             2026,
			StartDate:        "2026-06-11",
			EndDate:          "2026-07-19",
			ImportanceFactor: match.ImportanceWorldCup,
			Participants: []competition.Participant{
				{CountryID: CountryIDArgentina, CountryName: "Argentina", CountryCode: "ARG", GroupName: "A"},
				{CountryID: CountryIDFrance, CountryName: "France", CountryCode: "FRA", GroupName: "A"},
			},
		},
		{
			ID:               CompetitionIDAsianCup,
			Name:             "AFC Asian Cup 2027",
			Type:             competition.TypeContinental,
			Format:           competition.FormatGroupKnockout,
			Status:           competition.StatusUpcoming,
			Confederation:    string(country.ConfederationAFC),
			Year:             2027,
			ImportanceFactor: match.ImportanceContinental,
			Participants: []competition.Participant{
				{CountryID: CountryIDJapan, CountryName: "Japan", CountryCode: "JPN", GroupName: "B"},
				{CountryID: CountryIDIndonesia, CountryName: "Indonesia", CountryCode: "IDN", GroupName: "B"},
			},
		},
	}
}

func SeedMatches() []match.Match {
	worldCup := CompetitionIDWorldCup
	two, one := 2, 1

	return []match.Match{
		{
			ID:               1,
			HomeID:           CountryIDArgentina,
			AwayID:           CountryIDFrance,
			HomeName:         "Argentina",
			AwayName:         "France",
			MatchDate:        "2025-11-14T19:00:00Z",
			Venue:            "Estadio Monumental",
			Status:           match.StatusFinished,
			ScoreHome:        &two,
			ScoreAway:        &one,
			ImportanceFactor: match.ImportanceFriendly,
			Events: []match.Event{
				{ID: 1, MatchID: 1, CountryID: CountryIDArgentina, Type: match.EventGoal, Minute: 23, PlayerName: "L. Messi"},
				{ID: 2, MatchID: 1, CountryID: CountryIDFrance, Type: match.EventGoal, Minute: 58, PlayerName: "K. Mbappe"},
				{ID: 3, MatchID: 1, CountryID: CountryIDArgentina, Type: match.EventPenaltyGoal, Minute: 81, PlayerName: "J. Alvarez"},
			},
		},
		{
			ID:               2,
			CompetitionID:    &worldCup,
			CompetitionName:  "FIFA World Cup 2026",
			HomeID:           CountryIDArgentina,
			AwayID:           CountryIDFrance,
			HomeName:         "Argentina",
			AwayName:         "France",
			MatchDate:        "2026-06-12T18:00:00Z",
			Venue:            "MetLife Stadium",
			Status:           match.StatusScheduled,
			ImportanceFactor: match.ImportanceWorldCup,
		},
		{
			ID:               3,
			HomeID:           CountryIDJapan,
			AwayID:           CountryIDIndonesia,
			HomeName:         "Japan",
			AwayName:         "Indonesia",
			MatchDate:        "2026-03-20T10:00:00Z",
			Venue:            "Saitama Stadium",
			Status:           match.StatusScheduled,
			ImportanceFactor: match.ImportanceQualification,
		},
	}
}

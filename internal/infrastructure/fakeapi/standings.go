package fakeapi

import (
	"cmp"
	"slices"

	"github.com/riskibarqy/football-ranking/internal/domain/competition"
	"github.com/riskibarqy/football-ranking/internal/domain/match"
	"github.com/riskibarqy/football-ranking/internal/domain/value"
)

// computeStandings ranks participants by points, then goal difference, then
// goals scored. Only finished matches count.
func computeStandings(participants []competition.Participant, matches []match.Match) []competition.Standing {
	rows := make(map[int64]*competition.Standing, len(participants))
	for _, p := range participants {
		rows[p.CountryID] = &competition.Standing{
			CountryID:   p.CountryID,
			CountryName: p.CountryName,
			CountryCode: p.CountryCode,
			GroupName:   p.GroupName,
		}
	}

	for _, m := range matches {
		if !m.Played() {
			continue
		}
		home, away := rows[m.HomeID], rows[m.AwayID]
		if home == nil || away == nil {
			continue
		}
		applyResult(home, *m.ScoreHome, *m.ScoreAway)
		applyResult(away, *m.ScoreAway, *m.ScoreHome)
	}

	out := make([]competition.Standing, 0, len(rows))
	for _, row := range rows {
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		out = append(out, *row)
	}
	slices.SortFunc(out, func(a, b competition.Standing) int {
		return cmp.Or(
			cmp.Compare(a.GroupName, b.GroupName),
			cmp.Compare(b.Points, a.Points),
			cmp.Compare(b.GoalDifference, a.GoalDifference),
			cmp.Compare(b.GoalsFor, a.GoalsFor),
			cmp.Compare(a.CountryName, b.CountryName),
		)
	})

	position, group := 0, ""
	for idx := range out {
		if idx == 0 || out[idx].GroupName != group {
			position, group = 0, out[idx].GroupName
		}
		position++
		out[idx].Position = position
	}
	return out
}

func applyResult(row *competition.Standing, scored, conceded int) {
	row.Played++
	row.GoalsFor += scored
	row.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		row.Won++
		row.Points += 3
	case scored == conceded:
		row.Drawn++
		row.Points++
	default:
		row.Lost++
	}
}

func computeStatistics(matches []match.Match) competition.Statistics {
	stats := competition.Statistics{TotalMatches: len(matches)}
	for _, m := range matches {
		if !m.Played() {
			continue
		}
		stats.FinishedMatches++
		stats.TotalGoals += *m.ScoreHome + *m.ScoreAway
		switch {
		case *m.ScoreHome > *m.ScoreAway:
			stats.HomeWins++
		case *m.ScoreHome < *m.ScoreAway:
			stats.AwayWins++
		default:
			stats.Draws++
		}
	}
	if stats.FinishedMatches > 0 {
		stats.AvgGoals = value.Decimal(float64(stats.TotalGoals) / float64(stats.FinishedMatches))
	}
	return stats
}

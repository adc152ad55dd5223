package match

import "strconv"

const (
	ResultWin  = "W"
	ResultDraw = "D"
	ResultLoss = "L"
)

// ResultFor returns W, D or L from the point of view of countryID. Any id
// other than the home side is treated as the away side. Unplayed matches
// count as draws.
func ResultFor(m Match, countryID int64) string {
	home, away := 0, 0
	if m.ScoreHome != nil {
		home = *m.ScoreHome
	}
	if m.ScoreAway != nil {
		away = *m.ScoreAway
	}
	own, other := away, home
	if m.HomeID == countryID {
		own, other = home, away
	}
	switch {
	case own > other:
		return ResultWin
	case own < other:
		return ResultLoss
	default:
		return ResultDraw
	}
}

// GoalDifference renders goalsFor-goalsAgainst with an explicit plus sign
// for positive values.
func GoalDifference(goalsFor, goalsAgainst int) string {
	diff := goalsFor - goalsAgainst
	if diff > 0 {
		return "+" + strconv.Itoa(diff)
	}
	return strconv.Itoa(diff)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

package match

import "testing"

func intPtr(v int) *int { return &v }

func TestResultFor(t *testing.T) {
	m := Match{HomeID: 1, AwayID: 2, ScoreHome: intPtr(2), ScoreAway: intPtr(1)}

	if got := ResultFor(m, 1); got != ResultWin {
		t.Fatalf("home result: got=%s want=W", got)
	}
	if got := ResultFor(m, 2); got != ResultLoss {
		t.Fatalf("away result: got=%s want=L", got)
	}

	draw := Match{HomeID: 1, AwayID: 2, ScoreHome: intPtr(0), ScoreAway: intPtr(0)}
	if got := ResultFor(draw, 2); got != ResultDraw {
		t.Fatalf("draw result: got=%s want=D", got)
	}
}

func TestGoalDifference(t *testing.T) {
	cases := []struct {
		gf, ga int
		want   string
	}{
		{3, 1, "+2"},
		{1, 1, "0"},
		{0, 4, "-4"},
	}
	for _, tc := range cases {
		if got := GoalDifference(tc.gf, tc.ga); got != tc.want {
			t.Fatalf("GoalDifference(%d,%d): got=%s want=%s", tc.gf, tc.ga, got, tc.want)
		}
	}
}

func TestMatch_Score(t *testing.T) {
	if got := (Match{}).Score(); got != "vs" {
		t.Fatalf("expected vs for unplayed match, got %q", got)
	}
	played := Match{ScoreHome: intPtr(3), ScoreAway: intPtr(2)}
	if got := played.Score(); got != "3 - 2" {
		t.Fatalf("unexpected score: %q", got)
	}
}

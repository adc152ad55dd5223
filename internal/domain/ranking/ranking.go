// Package ranking holds presentation helpers for ranking positions.
package ranking

import "strconv"

// OrdinalSuffix renders n with its English ordinal suffix: 1st, 2nd, 3rd,
// 4th, 11th, 12th, 13th, 21st, 101st, 111th.
func OrdinalSuffix(n int) string {
	j := abs(n % 10)
	k := abs(n % 100)
	suffix := "th"
	switch {
	case j == 1 && k != 11:
		suffix = "st"
	case j == 2 && k != 12:
		suffix = "nd"
	case j == 3 && k != 13:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionSame Direction = "same"
)

// Change describes a move between two ranking positions.
type Change struct {
	Direction Direction `json:"direction" yaml:"direction"`
	Value     int       `json:"value" yaml:"value"`
	Known     bool      `json:"known" yaml:"known"`
}

// Icon is the arrow shown next to a position.
func (c Change) Icon() string {
	switch c.Direction {
	case DirectionUp:
		return "↑"
	case DirectionDown:
		return "↓"
	default:
		return "−"
	}
}

func (c Change) String() string {
	if c.Value == 0 {
		return c.Icon()
	}
	return c.Icon() + strconv.Itoa(c.Value)
}

// ChangeOf compares a current and previous ranking position. A lower number
// is a better rank, so moving from 10 to 7 is up by 3. A zero position means
// unknown and yields an unknown, unchanged result.
func ChangeOf(current, previous int) Change {
	if current == 0 || previous == 0 {
		return Change{Direction: DirectionSame}
	}
	diff := previous - current
	switch {
	case diff > 0:
		return Change{Direction: DirectionUp, Value: diff, Known: true}
	case diff < 0:
		return Change{Direction: DirectionDown, Value: -diff, Known: true}
	default:
		return Change{Direction: DirectionSame, Known: true}
	}
}

// FromDelta turns a signed ranking_change value (positive means climbed)
// into a Change.
func FromDelta(delta int) Change {
	switch {
	case delta > 0:
		return Change{Direction: DirectionUp, Value: delta, Known: true}
	case delta < 0:
		return Change{Direction: DirectionDown, Value: -delta, Known: true}
	default:
		return Change{Direction: DirectionSame, Known: true}
	}
}

var confederationNames = map[string]string{
	"UEFA":     "UEFA (Europe)",
	"AFC":      "AFC (Asia)",
	"CAF":      "CAF (Africa)",
	"CONCACAF": "CONCACAF (North & Central America)",
	"CONMEBOL": "CONMEBOL (South America)",
	"OFC":      "OFC (Oceania)",
}

// ConfederationName renders a code with its region, falling back to the code.
func ConfederationName(code string) string {
	if name, ok := confederationNames[code]; ok {
		return name
	}
	return code
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

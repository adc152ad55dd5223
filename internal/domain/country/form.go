package country

const (
	FormWin  = "W"
	FormDraw = "D"
	FormLoss = "L"
)

// FormEntry is one result in a recent form string.
type FormEntry struct {
	Result string `json:"result" yaml:"result"`
	Label  string `json:"label" yaml:"label"`
}

// ParseForm splits a form string such as "WWDLW" into entries, keeping the
// input order. Unknown letters are reported as losses.
func ParseForm(form string) []FormEntry {
	if form == "" {
		return []FormEntry{}
	}
	out := make([]FormEntry, 0, len(form))
	for _, r := range form {
		letter := string(r)
		out = append(out, FormEntry{Result: letter, Label: formLabel(letter)})
	}
	return out
}

func formLabel(letter string) string {
	switch letter {
	case FormWin:
		return "Win"
	case FormDraw:
		return "Draw"
	default:
		return "Loss"
	}
}

// WinPercentage is the share of wins in a form string, 0..100.
func WinPercentage(form string) float64 {
	entries := ParseForm(form)
	if len(entries) == 0 {
		return 0
	}
	wins := 0
	for _, entry := range entries {
		if entry.Result == FormWin {
			wins++
		}
	}
	return float64(wins) / float64(len(entries)) * 100
}

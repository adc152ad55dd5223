package country

import (
	"reflect"
	"testing"
)

func TestParseForm_PreservesOrder(t *testing.T) {
	got := ParseForm("WWDLW")
	results := make([]string, 0, len(got))
	for _, entry := range got {
		results = append(results, entry.Result)
	}
	if want := []string{"W", "W", "D", "L", "W"}; !reflect.DeepEqual(results, want) {
		t.Fatalf("unexpected results: got=%v want=%v", results, want)
	}
	if got[2].Label != "Draw" || got[3].Label != "Loss" {
		t.Fatalf("unexpected labels: %+v", got)
	}
}

func TestParseForm_Empty(t *testing.T) {
	if got := ParseForm(""); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestWinPercentage(t *testing.T) {
	if got := WinPercentage("WWDLW"); got != 60 {
		t.Fatalf("expected 60, got %v", got)
	}
	if got := WinPercentage(""); got != 0 {
		t.Fatalf("expected 0 for empty form, got %v", got)
	}
}

func TestInput_Normalize(t *testing.T) {
	in := Input{Name: "  Testland ", Code: "tst", Confederation: " uefa "}.Normalize()
	if in.Name != "Testland" || in.Code != "TST" || in.Confederation != ConfederationUEFA {
		t.Fatalf("unexpected normalized input: %+v", in)
	}
}

func TestParseConfederation(t *testing.T) {
	if c, ok := ParseConfederation("conmebol"); !ok || c != ConfederationCONMEBOL {
		t.Fatalf("expected CONMEBOL, got %q %v", c, ok)
	}
	if _, ok := ParseConfederation("FIFA"); ok {
		t.Fatalf("FIFA is not a confederation")
	}
}

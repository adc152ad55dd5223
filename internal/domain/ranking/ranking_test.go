package ranking

import "testing"

func TestOrdinalSuffix(t *testing.T) {
	cases := map[int]string{
		1:   "1st",
		2:   "2nd",
		3:   "3rd",
		4:   "4th",
		11:  "11th",
		12:  "12th",
		13:  "13th",
		21:  "21st",
		22:  "22nd",
		101: "101st",
		111: "111th",
		112: "112th",
	}
	for in, want := range cases {
		if got := OrdinalSuffix(in); got != want {
			t.Fatalf("OrdinalSuffix(%d): got=%s want=%s", in, got, want)
		}
	}
}

func TestChangeOf(t *testing.T) {
	if c := ChangeOf(7, 10); c.Direction != DirectionUp || c.Value != 3 || c.String() != "↑3" {
		t.Fatalf("expected up 3, got %+v", c)
	}
	if c := ChangeOf(12, 10); c.Direction != DirectionDown || c.Value != 2 {
		t.Fatalf("expected down 2, got %+v", c)
	}
	if c := ChangeOf(5, 5); c.Direction != DirectionSame || !c.Known {
		t.Fatalf("expected known same, got %+v", c)
	}
	if c := ChangeOf(5, 0); c.Known {
		t.Fatalf("expected unknown change without previous rank, got %+v", c)
	}
}

func TestConfederationName(t *testing.T) {
	if got := ConfederationName("CAF"); got != "CAF (Africa)" {
		t.Fatalf("unexpected name: %s", got)
	}
	if got := ConfederationName("XYZ"); got != "XYZ" {
		t.Fatalf("expected fallback to code, got %s", got)
	}
}

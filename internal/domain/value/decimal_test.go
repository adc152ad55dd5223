package value

import (
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestDecimal_UnmarshalNumberOrString(t *testing.T) {
	var payload struct {
		A Decimal `json:"a"`
		B Decimal `json:"b"`
		C Decimal `json:"c"`
	}
	if err := sonic.Unmarshal([]byte(`{"a":1840.93,"b":"1520.5","c":null}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.A != 1840.93 || payload.B != 1520.5 || payload.C != 0 {
		t.Fatalf("unexpected decimals: %+v", payload)
	}
}

func TestDecimal_RejectsGarbage(t *testing.T) {
	var d Decimal
	if err := d.UnmarshalJSON([]byte(`"abc"`)); err == nil {
		t.Fatalf("expected error for non numeric string")
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		0:          "0.00",
		1840.93:    "1,840.93",
		-1234567.5: "-1,234,567.50",
		999:        "999.00",
	}
	for in, want := range cases {
		if got := FormatNumber(in, 2); got != want {
			t.Fatalf("FormatNumber(%v): got=%q want=%q", in, got, want)
		}
	}
}

func TestInt_UnmarshalQuoted(t *testing.T) {
	var payload struct {
		Total Int `json:"total"`
	}
	if err := sonic.Unmarshal([]byte(`{"total":"55"}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Total != 55 {
		t.Fatalf("expected 55, got %d", payload.Total)
	}
}

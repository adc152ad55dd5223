package competition

import "testing"

func TestLabels(t *testing.T) {
	if got := FormatGroupKnockout.Label(); got != "Group + Knockout" {
		t.Fatalf("unexpected format label: %s", got)
	}
	if got := TypeContinental.Label(); got != "Continental Competition" {
		t.Fatalf("unexpected type label: %s", got)
	}
	if got := StatusOngoing.Label(); got != "Ongoing" {
		t.Fatalf("unexpected status label: %s", got)
	}
	if got := Status("").Label(); got != "" {
		t.Fatalf("expected empty label, got %q", got)
	}
}

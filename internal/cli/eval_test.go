package cli

import "testing"

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments([]string{"A=1", "B=0", "C=true", "D=false"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]bool{"A": true, "B": false, "C": true, "D": false}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("assignment[%s] = %v, want %v", k, got[k], v)
		}
	}
}

func TestParseAssignmentsMissingEquals(t *testing.T) {
	if _, err := parseAssignments([]string{"A"}); err == nil {
		t.Error("expected an error for a missing '='")
	}
}

func TestParseAssignmentsInvalidValue(t *testing.T) {
	if _, err := parseAssignments([]string{"A=maybe"}); err == nil {
		t.Error("expected an error for an invalid value")
	}
}

func TestParseAssignmentsEmpty(t *testing.T) {
	got, err := parseAssignments(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d entries, want 0", len(got))
	}
}

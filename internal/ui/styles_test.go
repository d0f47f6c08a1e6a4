package ui

import (
	"errors"
	"strings"
	"testing"
)

func TestSuccessNamesFile(t *testing.T) {
	got := Success("conflict.txt")
	if !strings.Contains(got, "conflict.txt") || !strings.Contains(got, "Resolved conflicts in") {
		t.Errorf("Success() = %q", got)
	}
}

func TestFileSummary(t *testing.T) {
	tests := []struct {
		regions int
		want    string
	}{
		{regions: 1, want: "(1 conflict region)"},
		{regions: 3, want: "(3 conflict regions)"},
	}

	for _, tt := range tests {
		got := FileSummary("a.go", tt.regions)
		if !strings.Contains(got, "a.go") || !strings.Contains(got, tt.want) {
			t.Errorf("FileSummary(a.go, %d) = %q, want it to contain %q", tt.regions, got, tt.want)
		}
	}
}

func TestError(t *testing.T) {
	got := Error(errors.New("boom"))
	if !strings.Contains(got, "boom") {
		t.Errorf("Error() = %q", got)
	}
}

func TestNoMarkers(t *testing.T) {
	got := NoMarkers("done.txt")
	if !strings.Contains(got, "done.txt") || !strings.Contains(got, "no conflict markers left") {
		t.Errorf("NoMarkers() = %q", got)
	}
}

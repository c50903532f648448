package quiz

import (
	"testing"
	"time"
)

// TestFileName verifies month abbreviation and unpadded day.
func TestFileName(t *testing.T) {
	cases := []struct {
		group int
		date  string
		want  string
	}{
		{3, "2025-01-05", "group-3-Jan5.txt"},
		{10, "2025-12-31", "group-10-Dec31.txt"},
		{1, "2024-09-09", "group-1-Sep9.txt"},
	}
	for _, tc := range cases {
		due, err := ParseDate(tc.date)
		if err != nil {
			t.Fatalf("parse %s: %v", tc.date, err)
		}
		if got := FileName(tc.group, due); got != tc.want {
			t.Fatalf("FileName(%d, %s) = %q, want %q", tc.group, tc.date, got, tc.want)
		}
	}
}

// TestParseDateRejectsInvalid verifies non-ISO dates are rejected.
func TestParseDateRejectsInvalid(t *testing.T) {
	for _, input := range []string{"", "01/05/2025", "2025-13-01"} {
		if _, err := ParseDate(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}

// TestFormatDate verifies the ISO rendering.
func TestFormatDate(t *testing.T) {
	date := time.Date(2026, time.March, 7, 15, 4, 0, 0, time.UTC)
	if got := FormatDate(date); got != "2026-03-07" {
		t.Fatalf("unexpected date %q", got)
	}
}

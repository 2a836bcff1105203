package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"value", false},
		{"  value  ", false},
	}

	for _, tt := range tests {
		if got := IsEmpty(tt.input); got != tt.expected {
			t.Errorf("IsEmpty(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email    string
		expected bool
	}{
		{"user@example.com", true},
		{"user.name+tag@sub.example.co", true},
		{"invalid", false},
		{"@example.com", false},
		{"user@", false},
		{"user@example", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.expected {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.expected)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"2026-08-28", true},
		{"2026-02-30", false},
		{"28-08-2026", false},
		{"2026/08/28", false},
		{"", false},
	}

	for _, tt := range tests {
		if _, ok := IsValidDate(tt.input); ok != tt.expected {
			t.Errorf("IsValidDate(%q) = %v, want %v", tt.input, ok, tt.expected)
		}
	}
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		hour     int
		minute   int
	}{
		{"09:00 AM", true, 9, 0},
		{"9:00 AM", true, 9, 0},
		{"06:30 PM", true, 18, 30},
		{"18:30", true, 18, 30},
		{" 10:15 AM ", true, 10, 15},
		{"25:00", false, 0, 0},
		{"not-a-time", false, 0, 0},
		{"", false, 0, 0},
	}

	for _, tt := range tests {
		parsed, ok := ParseClockTime(tt.input)
		if ok != tt.expected {
			t.Errorf("ParseClockTime(%q) ok = %v, want %v", tt.input, ok, tt.expected)
			continue
		}
		if ok && (parsed.Hour() != tt.hour || parsed.Minute() != tt.minute) {
			t.Errorf("ParseClockTime(%q) = %02d:%02d, want %02d:%02d",
				tt.input, parsed.Hour(), parsed.Minute(), tt.hour, tt.minute)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	options := []string{"Approved", "Rejected"}

	if !IsInSlice("Approved", options) {
		t.Error("expected Approved to be in slice")
	}
	if IsInSlice("Pending", options) {
		t.Error("expected Pending to not be in slice")
	}
	if IsInSlice("approved", options) {
		t.Error("comparison should be case sensitive")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "start_date is required"},
		{Field: "end_date", Message: "end_date is required"},
	}

	if errs.Error() != "start_date: start_date is required; end_date: end_date is required" {
		t.Errorf("unexpected error string: %q", errs.Error())
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(m))
	}
	if m["start_date"] != "start_date is required" {
		t.Errorf("unexpected message: %q", m["start_date"])
	}
}

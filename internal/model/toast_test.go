package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name     string
		expected Severity
	}{
		{"success", SeveritySuccess},
		{"error", SeverityError},
		{"warning", SeverityWarning},
		{"info", SeverityInfo},
		{" Error ", SeverityError},
		{"bogus", SeverityInfo},
		{"", SeverityInfo},
	}

	for _, test := range tests {
		result := ParseSeverity(test.name)
		if result != test.expected {
			t.Errorf("ParseSeverity(%q) = %s, expected %s", test.name, result, test.expected)
		}
	}
}

func TestSeverity_Icon(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeveritySuccess, IconSuccess},
		{SeverityError, IconError},
		{SeverityWarning, IconWarning},
		{SeverityInfo, IconInfo},
		{Severity("unknown"), IconInfo},
	}

	for _, test := range tests {
		result := test.severity.Icon()
		if result != test.expected {
			t.Errorf("Severity(%s).Icon() = %s, expected %s", test.severity, result, test.expected)
		}
	}
}

func TestNewToast(t *testing.T) {
	first := NewToast("hello", Severity("weird"))
	second := NewToast("hello", SeveritySuccess)

	if first.ID == second.ID {
		t.Error("Expected different toast IDs")
	}

	// Check prefix and UUID length
	if !strings.HasPrefix(first.ID, "toast-") || len(first.ID) != len("toast-")+36 {
		t.Errorf("Unexpected toast ID format: %s", first.ID)
	}

	if first.Severity != SeverityInfo {
		t.Errorf("Expected unknown severity to fall back to info, got %s", first.Severity)
	}

	if first.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}

	if second.Text() != IconSuccess+" hello" {
		t.Errorf("Unexpected toast text: %s", second.Text())
	}
}

func TestShortenRequest_MarshalJSON(t *testing.T) {
	body, err := json.Marshal(ShortenRequest{LongURL: "http://example.com/a?b=c"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if string(body) != `"http://example.com/a?b=c"` {
		t.Errorf("Expected a bare JSON string, got %s", body)
	}
}

func TestStatsResult_Normalize(t *testing.T) {
	stats := &StatsResult{AccessCount: -3}
	stats.Normalize()

	if stats.AccessCount != 0 {
		t.Errorf("Expected negative access count to clamp to 0, got %d", stats.AccessCount)
	}
}

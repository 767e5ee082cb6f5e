package main

import "testing"

func TestDefaultStatsURL(t *testing.T) {
	t.Run("falls back to localhost", func(t *testing.T) {
		t.Setenv("SYS_STATS_API_URL", "")
		if got := defaultStatsURL(); got != fallbackStatsURL {
			t.Errorf("defaultStatsURL() = %q, want %q", got, fallbackStatsURL)
		}
	})

	t.Run("prefers environment", func(t *testing.T) {
		t.Setenv("SYS_STATS_API_URL", "http://stats.example.com:5000/stats")
		if got := defaultStatsURL(); got != "http://stats.example.com:5000/stats" {
			t.Errorf("defaultStatsURL() = %q", got)
		}
	})
}

func TestValidateStatsURL(t *testing.T) {
	valid := []string{
		"http://localhost:5000/stats",
		"https://stats.example.com/stats",
		"http://192.168.1.10:5000/stats",
	}
	for _, u := range valid {
		if err := validateStatsURL(u); err != nil {
			t.Errorf("validateStatsURL(%q) = %v, want nil", u, err)
		}
	}

	invalid := []string{
		"",
		"localhost:5000",
		"ftp://host/stats",
		"http://",
		"://bad",
	}
	for _, u := range invalid {
		if err := validateStatsURL(u); err == nil {
			t.Errorf("validateStatsURL(%q) = nil, want error", u)
		}
	}
}

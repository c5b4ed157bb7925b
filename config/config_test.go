package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.SeatsPerRow != 5 {
		t.Fatalf("expected 5 seats per row, got %d", cfg.SeatsPerRow)
	}
	if cfg.Debug {
		t.Fatal("expected debug to default to false")
	}
	if !cfg.AltScreen || !cfg.Mouse {
		t.Fatalf("expected alt screen and mouse enabled, got %+v", cfg)
	}
	if !strings.HasSuffix(cfg.LogDir, AppName) {
		t.Fatalf("expected log dir under %s, got %q", AppName, cfg.LogDir)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MOVIE_BOOKING_DEBUG", "true")
	t.Setenv("MOVIE_BOOKING_SEATS_PER_ROW", "2")
	t.Setenv("MOVIE_BOOKING_LOG_DIR", "/tmp/booking-logs")

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !cfg.Debug {
		t.Fatal("expected debug from env")
	}
	if cfg.SeatsPerRow != 2 {
		t.Fatalf("expected 2 seats per row, got %d", cfg.SeatsPerRow)
	}
	if cfg.LogDir != "/tmp/booking-logs" {
		t.Fatalf("expected log dir from env, got %q", cfg.LogDir)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booking.yaml")
	if err := os.WriteFile(path, []byte("seats_per_row: 4\nmouse: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(New(), path)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.SeatsPerRow != 4 || cfg.Mouse {
		t.Fatalf("expected file values, got %+v", cfg)
	}
}

func TestLoad_InvalidSeatsPerRow(t *testing.T) {
	t.Setenv("MOVIE_BOOKING_SEATS_PER_ROW", "0")

	if _, err := Load(New(), ""); err == nil {
		t.Fatal("expected error for zero seats per row")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_ReportsEveryInvalidKey(t *testing.T) {
	v := New()
	v.Set("log_dir", "")
	v.Set("seats_per_row", 0)

	_, err := Load(v, "")
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
	for _, want := range []string{"LogDir: is required", "SeatsPerRow: must be at least 1"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %q", want, err.Error())
		}
	}
}

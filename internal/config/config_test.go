package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.ClassicRounds != 20 {
		t.Errorf("ClassicRounds = %d, want 20", cfg.ClassicRounds)
	}
	if cfg.TimedSeconds != 60 {
		t.Errorf("TimedSeconds = %d, want 60", cfg.TimedSeconds)
	}
	if cfg.FeedbackDelayMs != 500 {
		t.Errorf("FeedbackDelayMs = %d, want 500", cfg.FeedbackDelayMs)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stroop.yaml")
	content := []byte("classic_rounds: 10\ntimed_seconds: 30\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ClassicRounds != 10 {
		t.Errorf("ClassicRounds = %d, want 10", cfg.ClassicRounds)
	}
	if cfg.TimedSeconds != 30 {
		t.Errorf("TimedSeconds = %d, want 30", cfg.TimedSeconds)
	}
	// Unspecified values keep their defaults.
	if cfg.FeedbackDelayMs != 500 {
		t.Errorf("FeedbackDelayMs = %d, want default 500", cfg.FeedbackDelayMs)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("classic_rounds: [broken"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}

func TestSanitizedRejectsNonPositive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zero.yaml")
	if err := os.WriteFile(path, []byte("classic_rounds: 0\ntimed_seconds: -5\n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ClassicRounds != 20 || cfg.TimedSeconds != 60 {
		t.Errorf("non-positive values should fall back to defaults, got %+v", cfg)
	}
}

func TestSessionConfig(t *testing.T) {
	cfg := GameConfig{ClassicRounds: 15, TimedSeconds: 45, FeedbackDelayMs: 250}
	sc := cfg.SessionConfig(99)

	if sc.Seed != 99 {
		t.Errorf("Seed = %d, want 99", sc.Seed)
	}
	if sc.ClassicRounds != 15 || sc.TimedSeconds != 45 {
		t.Errorf("budgets not carried over: %+v", sc)
	}
	if sc.FeedbackDelay.Milliseconds() != 250 {
		t.Errorf("FeedbackDelay = %v, want 250ms", sc.FeedbackDelay)
	}
}

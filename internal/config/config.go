// Package config provides YAML-based settings for the stroop game.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/stroop/internal/game"
)

// GameConfig holds the tunable session parameters.
type GameConfig struct {
	// ClassicRounds is the round budget for classic mode.
	ClassicRounds int `yaml:"classic_rounds"`
	// TimedSeconds is the time budget for timed mode.
	TimedSeconds int `yaml:"timed_seconds"`
	// FeedbackDelayMs is how long answer feedback stays on screen while
	// input is locked.
	FeedbackDelayMs int `yaml:"feedback_delay_ms"`
}

// Default returns the stock settings.
func Default() GameConfig {
	return GameConfig{
		ClassicRounds:   game.DefaultClassicRounds,
		TimedSeconds:    game.DefaultTimedSeconds,
		FeedbackDelayMs: int(game.DefaultFeedbackDelay / time.Millisecond),
	}
}

// Load reads the game configuration.
// Search order: customPath -> ~/.stroop/config.yaml -> ./config.yaml -> defaults.
// A missing file at the fallback locations is not an error; a custom path
// that cannot be read or parsed is.
func Load(customPath string) (GameConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg := Default()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return GameConfig{}, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg.sanitized(), nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			cfg := Default()
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg.sanitized(), nil
			}
		}
	}

	if data, err := os.ReadFile("config.yaml"); err == nil {
		cfg := Default()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg.sanitized(), nil
		}
	}

	return Default(), nil
}

// SessionConfig converts the settings into a session configuration.
// Seed and clock stay with the caller.
func (c GameConfig) SessionConfig(seed int64) game.Config {
	return game.Config{
		Seed:          seed,
		ClassicRounds: c.ClassicRounds,
		TimedSeconds:  c.TimedSeconds,
		FeedbackDelay: time.Duration(c.FeedbackDelayMs) * time.Millisecond,
	}
}

// sanitized replaces non-positive values with the defaults.
func (c GameConfig) sanitized() GameConfig {
	def := Default()
	if c.ClassicRounds <= 0 {
		c.ClassicRounds = def.ClassicRounds
	}
	if c.TimedSeconds <= 0 {
		c.TimedSeconds = def.TimedSeconds
	}
	if c.FeedbackDelayMs <= 0 {
		c.FeedbackDelayMs = def.FeedbackDelayMs
	}
	return c
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stroop", "config.yaml")
}

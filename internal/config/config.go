// Package config provides YAML-based configuration loading for the game,
// with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all configuration for a session.
type Config struct {
	Splash   SplashConfig   `yaml:"splash"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	GameOver GameOverConfig `yaml:"game_over"`
	Assets   AssetsConfig   `yaml:"assets"`
	Score    ScoreConfig    `yaml:"score"`
	History  HistoryConfig  `yaml:"history"`
	Audio    AudioConfig    `yaml:"audio"`
	Log      LogConfig      `yaml:"log"`
	Session  SessionConfig  `yaml:"session"`
}

// SplashConfig defines the title screen.
type SplashConfig struct {
	WindowTitle  string `yaml:"window_title"`
	Title        string `yaml:"title"`
	Prompt       string `yaml:"prompt"`
	Font         string `yaml:"font"`
	FontSize     int    `yaml:"font_size"`
	Background   string `yaml:"background"` // optional
	TitleMargin  int    `yaml:"title_margin"`
	TextColor    string `yaml:"text_color"`
	FrameDelayMS int    `yaml:"frame_delay_ms"`
}

// Delay returns the pacing delay of one splash frame.
func (c SplashConfig) Delay() time.Duration {
	return time.Duration(c.FrameDelayMS) * time.Millisecond
}

// MouseSprites maps each heading to its sprite file. Body is drawn for
// every segment behind the head.
type MouseSprites struct {
	North string `yaml:"north"`
	South string `yaml:"south"`
	East  string `yaml:"east"`
	West  string `yaml:"west"`
	Body  string `yaml:"body"`
}

// Cell is a grid coordinate in YAML form.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// GameplayConfig defines the play phase.
type GameplayConfig struct {
	WindowTitle  string       `yaml:"window_title"`
	Font         string       `yaml:"font"`
	FontSize     int          `yaml:"font_size"`
	HUDColor     string       `yaml:"hud_color"`
	Background   string       `yaml:"background"`
	Cheese       string       `yaml:"cheese"`
	Mouse        MouseSprites `yaml:"mouse"`
	EatSound     string       `yaml:"eat_sound"`
	FrameDelayMS int          `yaml:"frame_delay_ms"`
	MoveEvery    int          `yaml:"move_every"` // frames per grid step
	CheeseStart  Cell         `yaml:"cheese_start"`
}

// Delay returns the pacing delay of one gameplay frame.
func (c GameplayConfig) Delay() time.Duration {
	return time.Duration(c.FrameDelayMS) * time.Millisecond
}

// GameOverConfig defines the terminal screen.
type GameOverConfig struct {
	WindowTitle  string `yaml:"window_title"`
	Message      string `yaml:"message"`
	Font         string `yaml:"font"`
	FontSize     int    `yaml:"font_size"`
	TextColor    string `yaml:"text_color"`
	DeadSound    string `yaml:"dead_sound"`
	FrameDelayMS int    `yaml:"frame_delay_ms"`
}

// Delay returns the pacing delay of the game over wait loop.
func (c GameOverConfig) Delay() time.Duration {
	return time.Duration(c.FrameDelayMS) * time.Millisecond
}

// AssetsConfig locates textures, fonts and sounds.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// ScoreConfig locates the high score file.
type ScoreConfig struct {
	File string `yaml:"file"`
}

// HistoryConfig locates the run history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DB      string `yaml:"db"`
}

// AudioConfig controls sound output.
type AudioConfig struct {
	Mute bool `yaml:"mute"`
}

// LogConfig controls the game log.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// SessionConfig holds phase sequencing policy.
type SessionConfig struct {
	// GameOverOnQuit shows the Game Over screen even when gameplay ended
	// through the quit signal.
	GameOverOnQuit bool `yaml:"game_over_on_quit"`
}

// Validate reports every missing or out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	required := map[string]string{
		"splash.font":          c.Splash.Font,
		"gameplay.font":        c.Gameplay.Font,
		"gameplay.cheese":      c.Gameplay.Cheese,
		"gameplay.background":  c.Gameplay.Background,
		"gameplay.mouse.north": c.Gameplay.Mouse.North,
		"gameplay.mouse.south": c.Gameplay.Mouse.South,
		"gameplay.mouse.east":  c.Gameplay.Mouse.East,
		"gameplay.mouse.west":  c.Gameplay.Mouse.West,
		"gameplay.mouse.body":  c.Gameplay.Mouse.Body,
		"game_over.font":       c.GameOver.Font,
		"score.file":           c.Score.File,
	}
	for _, key := range sortedKeys(required) {
		if required[key] == "" {
			errs = append(errs, fmt.Errorf("%s is required", key))
		}
	}

	positive := map[string]int{
		"splash.frame_delay_ms":    c.Splash.FrameDelayMS,
		"splash.font_size":         c.Splash.FontSize,
		"gameplay.frame_delay_ms":  c.Gameplay.FrameDelayMS,
		"gameplay.font_size":       c.Gameplay.FontSize,
		"gameplay.move_every":      c.Gameplay.MoveEvery,
		"game_over.frame_delay_ms": c.GameOver.FrameDelayMS,
		"game_over.font_size":      c.GameOver.FontSize,
	}
	for _, key := range sortedKeys(positive) {
		if positive[key] <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", key, positive[key]))
		}
	}

	if c.Splash.TitleMargin < 0 {
		errs = append(errs, fmt.Errorf("splash.title_margin must not be negative, got %d", c.Splash.TitleMargin))
	}
	if c.History.Enabled && c.History.DB == "" {
		errs = append(errs, errors.New("history.db is required when history is enabled"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

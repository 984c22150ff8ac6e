package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the environment variables that override file configuration.
// Empty values and nil pointers leave the file setting untouched.
type Env struct {
	ConfigPath     string `env:"JERRY_CONFIG"`
	AssetsDir      string `env:"JERRY_ASSETS_DIR"`
	ScoreFile      string `env:"JERRY_SCORE_FILE"`
	HistoryDB      string `env:"JERRY_HISTORY_DB"`
	LogFile        string `env:"JERRY_LOG_FILE"`
	LogLevel       string `env:"JERRY_LOG_LEVEL"`
	Mute           *bool  `env:"JERRY_MUTE"`
	GameOverOnQuit *bool  `env:"JERRY_GAME_OVER_ON_QUIT"`
}

// ParseEnv reads the JERRY_* environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}

// Apply writes the set variables over cfg.
func (e Env) Apply(cfg *Config) {
	if e.AssetsDir != "" {
		cfg.Assets.Dir = e.AssetsDir
	}
	if e.ScoreFile != "" {
		cfg.Score.File = e.ScoreFile
	}
	if e.HistoryDB != "" {
		cfg.History.DB = e.HistoryDB
	}
	if e.LogFile != "" {
		cfg.Log.File = e.LogFile
	}
	if e.LogLevel != "" {
		cfg.Log.Level = e.LogLevel
	}
	if e.Mute != nil {
		cfg.Audio.Mute = *e.Mute
	}
	if e.GameOverOnQuit != nil {
		cfg.Session.GameOverOnQuit = *e.GameOverOnQuit
	}
}

// Resolve loads the configuration the way the binary does: the flag path
// wins over JERRY_CONFIG, then env overrides are applied and the result
// validated.
func Resolve(flagPath string) (Config, error) {
	e, err := ParseEnv()
	if err != nil {
		return Config{}, err
	}

	path := flagPath
	if path == "" {
		path = e.ConfigPath
	}

	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	e.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/jerry.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the default configuration.
// It mirrors defaults/jerry.yaml.
func Default() Config {
	return Config{
		Splash: SplashConfig{
			WindowTitle:  "Jerry_no_Tom",
			Title:        "Jerry_no_Tom",
			Prompt:       "Press Enter to start",
			Font:         "pixelgosub.yaml",
			FontSize:     25,
			Background:   "background.txt",
			TitleMargin:  1,
			TextColor:    "bright-white",
			FrameDelayMS: 20,
		},
		Gameplay: GameplayConfig{
			WindowTitle: "Jerry_no_Tom",
			Font:        "pixelgosub.yaml",
			FontSize:    28,
			HUDColor:    "bright-yellow",
			Background:  "background.txt",
			Cheese:      "cheese.txt",
			Mouse: MouseSprites{
				North: "mouse_up.txt",
				South: "mouse_down.txt",
				East:  "mouse_right.txt",
				West:  "mouse_left.txt",
				Body:  "mouse_body.txt",
			},
			EatSound:     "eat.wav",
			FrameDelayMS: 10,
			MoveEvery:    8,
			CheeseStart:  Cell{X: 5, Y: 4},
		},
		GameOver: GameOverConfig{
			WindowTitle:  "Game Over",
			Message:      "Game Over",
			Font:         "pixelgosub.yaml",
			FontSize:     72,
			TextColor:    "bright-white",
			DeadSound:    "dead.wav",
			FrameDelayMS: 10,
		},
		Assets:  AssetsConfig{Dir: "assets"},
		Score:   ScoreConfig{File: "~/.jerry/highestscore.txt"},
		History: HistoryConfig{Enabled: true, DB: "~/.jerry/runs.db"},
		Log:     LogConfig{File: "~/.jerry/jerry.log", Level: "info"},
		Session: SessionConfig{GameOverOnQuit: true},
	}
}

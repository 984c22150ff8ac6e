package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jerry/internal/assets"
	"github.com/vovakirdan/jerry/internal/audio"
	"github.com/vovakirdan/jerry/internal/config"
	"github.com/vovakirdan/jerry/internal/mouse"
	"github.com/vovakirdan/jerry/internal/platform/tui"
	"github.com/vovakirdan/jerry/internal/score"
	"github.com/vovakirdan/jerry/internal/session"
	"github.com/vovakirdan/jerry/internal/storage"
)

// runGame plays one session. Errors are returned after every deferred
// release has run; main turns them into exit status 1.
func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(flagConfig)
	if err != nil {
		return fmt.Errorf("cannot load configuration: %w", err)
	}

	logger, logFile, err := openLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("cannot open log: %w", err)
	}
	defer logFile.Close()

	assetsDir := config.ExpandPath(cfg.Assets.Dir)
	library := assets.NewLibrary(assetsDir)
	player := audio.New(assetsDir, cfg.Audio.Mute, logger)
	defer player.Close()

	deps := session.Deps{
		Host:     tui.NewHost(),
		Textures: library,
		Fonts:    library,
		Audio:    player,
		Scores:   score.NewFileStore(cfg.Score.File, logger),
		World:    mouse.NewWorld,
		Logger:   logger,
	}

	if cfg.History.Enabled {
		history, err := storage.Open(cfg.History.DB)
		if err != nil {
			logger.Warn("run history unavailable", "path", cfg.History.DB, "error", err)
		} else {
			defer history.Close()
			deps.History = history
		}
	}

	controller := session.NewController(cfg, deps, session.WithObserver(func(p session.Phase) {
		logger.Debug("phase", "name", p)
	}))
	s, err := controller.Run()
	if err != nil {
		logger.Error("session aborted", "error", err)
		return fmt.Errorf("session aborted: %w", err)
	}

	logger.Info("session finished", "score", s.Score(), "high_score", s.HighScore(), "quit", s.Quit())
	return nil
}

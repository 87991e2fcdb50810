package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/five82/vitrine/internal/carousel"
	"github.com/five82/vitrine/internal/config"
	"github.com/five82/vitrine/internal/imagery"
	"github.com/five82/vitrine/internal/logger"
	"github.com/five82/vitrine/internal/prefs"
	"github.com/five82/vitrine/internal/ui"
)

// Options configure the vitrine application.
type Options struct {
	ShowcasePath string // empty uses ~/.config/vitrine/showcase.toml or the demo
	PrefsPath    string // empty uses ~/.config/vitrine/prefs.toml
	LogPath      string // empty uses ~/.local/state/vitrine/vitrine.log
	LogLevel     string
	NoAutoPlay   bool
}

// ResolveLogPath returns the absolute log file path for path, applying the
// default when it is empty.
func ResolveLogPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = logger.DefaultPath()
	}
	resolved, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("resolve log path: %w", err)
	}
	return resolved, nil
}

// Run boots the vitrine TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	logPath, err := ResolveLogPath(opts.LogPath)
	if err != nil {
		return err
	}
	logFile, err := logger.OpenFile(logPath)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	log, err := logger.New(logger.Options{Level: opts.LogLevel, Writer: logFile})
	if err != nil {
		return err
	}
	log.Info("vitrine starting")

	showcase, err := config.Load(opts.ShowcasePath)
	if err != nil {
		log.Error(err, "load showcase")
		return fmt.Errorf("load showcase: %w", err)
	}
	source := showcase.Path
	if source == "" {
		source = "built-in demo"
	}
	log.WithFields(map[string]any{
		"showcase": source,
		"sections": len(showcase.Sections),
		"slides":   len(showcase.Carousel.Slides),
	}).Info("showcase loaded")

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		log.With("path", prefsPath).Warn("preferences unreadable, using defaults: " + err.Error())
	}

	err = ui.Run(ui.Options{
		Context:         ctx,
		Showcase:        showcase,
		ThemeName:       userPrefs.Theme,
		PrefsPath:       prefsPath,
		Logger:          log,
		Images:          imagery.NewLoader(showcase.BaseDir()),
		Scheduler:       carousel.NewTickerScheduler(ctx),
		DisableAutoPlay: opts.NoAutoPlay,
	})
	if err != nil {
		log.Error(err, "ui exited")
		return fmt.Errorf("run ui: %w", err)
	}
	log.Info("vitrine stopped")
	return nil
}

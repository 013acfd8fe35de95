package main

import (
	"github.com/plumekit/plume/assets"
	"github.com/plumekit/plume/internal/config"
	"github.com/plumekit/plume/internal/logger"
	"github.com/plumekit/plume/pkg/formfactor"
	"github.com/plumekit/plume/pkg/styles"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config   *config.Config
	Log      *logger.Logger
	Selector *styles.Selector
	Finder   *styles.Finder
}

func newAppContext(flags *rootFlags) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.Format != "json",
	})
	if err != nil {
		return nil, err
	}

	selector := styles.NewSelector(
		assets.FS,
		assets.BasePath,
		func() string { return cfg.Style },
		platformProvider(cfg),
	)

	searchPaths := append(append([]string{}, cfg.StylePaths...), styles.SearchPaths()...)
	finder := styles.NewFinder(searchPaths, log)

	return &AppContext{
		Config:   cfg,
		Log:      log,
		Selector: selector,
		Finder:   finder,
	}, nil
}

// platformProvider prefers the configured platform and falls back to
// detecting the terminal's form factor.
func platformProvider(cfg *config.Config) styles.Provider {
	return func() string {
		if cfg.Platform != "" {
			return cfg.Platform
		}
		return formfactor.New().ScreenType().PlatformID()
	}
}

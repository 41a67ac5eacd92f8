package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/pinecoastbbq/pinecoast/internal/app"
	"github.com/pinecoastbbq/pinecoast/internal/config"
	"github.com/pinecoastbbq/pinecoast/internal/rotator"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `pinecoast init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// appOptions builds the page options, with asset URLs rooted at basePath.
// Hero image patterns are expanded against the assets directory.
func appOptions(cfg *config.Config, basePath string) (app.Options, error) {
	names, err := rotator.ResolveImages(os.DirFS(cfg.AssetsDir), cfg.HeroImages)
	if err != nil {
		return app.Options{}, fmt.Errorf("resolving hero images in %s: %w", cfg.AssetsDir, err)
	}

	asset := func(name string) string {
		if name == "" {
			return ""
		}
		return basePath + "assets/" + name
	}
	hero := make([]string, len(names))
	for i, n := range names {
		hero[i] = asset(n)
	}

	return app.Options{
		BaseURL:    cfg.BaseURL,
		Client:     &http.Client{Timeout: cfg.RequestTimeout},
		BasePath:   basePath,
		LogoURL:    asset(cfg.Logo),
		StoryImage: asset(cfg.StoryImage),
		HeroImages: hero,
		HeroPeriod: cfg.RotationInterval,
	}, nil
}

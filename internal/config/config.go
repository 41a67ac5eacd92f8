package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "PINECOAST_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PINECOAST_*). A .env file in the working
// directory, if present, is loaded into the environment first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: PINECOAST_BASE_URL -> base_url,
	// PINECOAST_SMTP_HOST -> mail.smtp_host, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	applyLegacyEnv(cfg)
	return cfg, nil
}

// envKey maps a PINECOAST_* variable name to its koanf key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if strings.HasPrefix(key, "smtp_") || strings.HasPrefix(key, "mail_") {
		return "mail." + key
	}
	return key
}

// applyLegacyEnv honours the unprefixed variable names used by earlier
// deployments. Prefixed or file values always win.
func applyLegacyEnv(cfg *Config) {
	fill := func(dst *string, name string) {
		if *dst == "" {
			*dst = os.Getenv(name)
		}
	}
	fill(&cfg.BaseURL, "BASE_URL")
	fill(&cfg.Mail.To, "TO_EMAIL")
	fill(&cfg.Mail.From, "FROM_EMAIL")
	fill(&cfg.Mail.Password, "GMAIL_APP_PASSWORD")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil {
			return fmt.Errorf("invalid base_url %q: %w", c.BaseURL, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid base_url %q: must be an absolute http(s) URL", c.BaseURL)
		}
	}

	if len(c.HeroImages) == 0 {
		return fmt.Errorf("hero_images must list at least one image")
	}

	if c.RotationInterval <= 0 {
		return fmt.Errorf("rotation_interval must be positive")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}

	m := c.Mail
	partial := m.From != "" || m.To != "" || m.Password != ""
	if partial && !m.Enabled() {
		return fmt.Errorf("mail settings incomplete: mail_from, mail_to and smtp_password must all be set")
	}
	if m.Enabled() && (m.Host == "" || m.Port <= 0) {
		return fmt.Errorf("smtp_host and smtp_port are required when mail is enabled")
	}

	if c.WebhookURL != "" {
		if _, err := url.ParseRequestURI(c.WebhookURL); err != nil {
			return fmt.Errorf("invalid webhook_url %q: %w", c.WebhookURL, err)
		}
	}

	return nil
}

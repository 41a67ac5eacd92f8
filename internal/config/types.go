package config

import "time"

// Config is the top-level pinecoast configuration, corresponding to .pinecoast.yml.
type Config struct {
	Port             int           `yaml:"port" koanf:"port"`
	BaseURL          string        `yaml:"base_url" koanf:"base_url"`
	AssetsDir        string        `yaml:"assets_dir" koanf:"assets_dir"`
	Logo             string        `yaml:"logo" koanf:"logo"`
	StoryImage       string        `yaml:"story_image" koanf:"story_image"`
	HeroImages       []string      `yaml:"hero_images" koanf:"hero_images"`
	RotationInterval time.Duration `yaml:"rotation_interval" koanf:"rotation_interval"`
	SessionTTL       time.Duration `yaml:"session_ttl" koanf:"session_ttl"`
	RequestTimeout   time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
	AllowAllOrigins  bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Mail             MailConfig    `yaml:"mail" koanf:"mail"`
	WebhookURL       string        `yaml:"webhook_url" koanf:"webhook_url"`
}

// MailConfig holds the SMTP settings used to forward contact submissions.
type MailConfig struct {
	Host     string `yaml:"smtp_host" koanf:"smtp_host"`
	Port     int    `yaml:"smtp_port" koanf:"smtp_port"`
	Username string `yaml:"smtp_username" koanf:"smtp_username"`
	Password string `yaml:"smtp_password" koanf:"smtp_password"`
	From     string `yaml:"mail_from" koanf:"mail_from"`
	To       string `yaml:"mail_to" koanf:"mail_to"`
}

// Enabled reports whether enough is configured to send mail.
func (m MailConfig) Enabled() bool {
	return m.From != "" && m.To != "" && m.Password != ""
}

package config

import "time"

// DefaultHeroImages are the home page hero backgrounds, relative to the assets directory.
var DefaultHeroImages = []string{
	"fire.jpg",
	"brisket.jpg",
	"full-plate.jpg",
	"wings.jpg",
	"breakfast.jpg",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:             8080,
		BaseURL:          "",
		AssetsDir:        "assets",
		Logo:             "logo.png",
		StoryImage:       "us.jpg",
		HeroImages:       append([]string(nil), DefaultHeroImages...),
		RotationInterval: 5 * time.Second,
		SessionTTL:       30 * time.Minute,
		RequestTimeout:   10 * time.Second,
		AllowAllOrigins:  true,
		Mail: MailConfig{
			Host: "smtp.gmail.com",
			Port: 587,
		},
	}
}

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to pinecoast! Let's configure the site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Listen port.
	portPrompt := promptui.Prompt{
		Label:    "Port to listen on",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Contact API base URL.
	basePrompt := promptui.Prompt{
		Label:   "Contact API base URL (blank for same origin)",
		Default: cfg.BaseURL,
	}
	if cfg.BaseURL, err = basePrompt.Run(); err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}

	// 3. Assets.
	assetsPrompt := promptui.Prompt{
		Label:   "Assets directory",
		Default: cfg.AssetsDir,
	}
	if cfg.AssetsDir, err = assetsPrompt.Run(); err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}

	heroPrompt := promptui.Prompt{
		Label:   "Hero images (comma-separated names or globs)",
		Default: strings.Join(cfg.HeroImages, ","),
	}
	heroStr, err := heroPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("hero images: %w", err)
	}
	if hero := splitAndTrim(heroStr); len(hero) > 0 {
		cfg.HeroImages = hero
	}

	// 4. Delivery of contact submissions.
	deliveryPrompt := promptui.Select{
		Label: "How should contact messages be delivered?",
		Items: []string{
			"email: send through SMTP",
			"webhook: POST JSON to a URL",
			"log: only write them to the server log",
		},
	}
	choice, _, err := deliveryPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("delivery selection: %w", err)
	}

	switch choice {
	case 0:
		if err := promptMail(&cfg.Mail); err != nil {
			return nil, err
		}
	case 1:
		hookPrompt := promptui.Prompt{Label: "Webhook URL"}
		if cfg.WebhookURL, err = hookPrompt.Run(); err != nil {
			return nil, fmt.Errorf("webhook url: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func promptMail(m *MailConfig) error {
	var err error

	fields := []struct {
		label string
		dst   *string
		mask  rune
	}{
		{"Send messages to", &m.To, 0},
		{"Send messages from", &m.From, 0},
		{"SMTP app password", &m.Password, '*'},
		{"SMTP host", &m.Host, 0},
	}
	for _, f := range fields {
		p := promptui.Prompt{Label: f.label, Default: *f.dst, Mask: f.mask}
		if *f.dst, err = p.Run(); err != nil {
			return fmt.Errorf("%s: %w", strings.ToLower(f.label), err)
		}
	}

	portPrompt := promptui.Prompt{
		Label:    "SMTP port",
		Default:  strconv.Itoa(m.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return fmt.Errorf("smtp port: %w", err)
	}
	m.Port, _ = strconv.Atoi(portStr)
	return nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("enter a port between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}

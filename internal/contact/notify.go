package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pinecoastbbq/pinecoast/internal/config"
)

// Notifier delivers a contact submission to the restaurant.
type Notifier interface {
	Notify(ctx context.Context, s Submission) error
}

// NewNotifier builds the delivery chain from config: SMTP when mail is
// configured, a webhook when a URL is set, and the server log otherwise.
func NewNotifier(cfg *config.Config) Notifier {
	var chain MultiNotifier
	if cfg.Mail.Enabled() {
		chain = append(chain, NewSMTPMailer(cfg.Mail))
	}
	if cfg.WebhookURL != "" {
		chain = append(chain, NewWebhookNotifier(cfg.WebhookURL, cfg.RequestTimeout))
	}
	if len(chain) == 0 {
		log.Printf("contact: no mail or webhook configured, submissions will only be logged")
		return LogNotifier{}
	}
	return chain
}

// MultiNotifier delivers to every notifier in turn. It fails if any one of
// them fails, after trying them all.
type MultiNotifier []Notifier

// Notify calls every notifier and joins their errors.
func (m MultiNotifier) Notify(ctx context.Context, s Submission) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogNotifier writes submissions to the standard logger.
type LogNotifier struct{}

// Notify logs the submission.
func (LogNotifier) Notify(_ context.Context, s Submission) error {
	log.Printf("contact: submission %s from %q <%s>: %q", s.ID, s.Form.Name, s.Form.Email, s.Form.Message)
	return nil
}

// webhookPayload is the JSON body posted to a webhook.
type webhookPayload struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// WebhookNotifier POSTs each submission as JSON to a URL.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

// NewWebhookNotifier creates a WebhookNotifier. A non-positive timeout
// defaults to 10 seconds.
func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Notify posts the submission as JSON to the webhook URL.
func (w *WebhookNotifier) Notify(ctx context.Context, s Submission) error {
	payload, err := json.Marshal(webhookPayload{
		ID:        s.ID,
		Type:      "contact_submission",
		Title:     "New contact form submission from " + s.Form.Name,
		Message:   s.Form.Message,
		Name:      s.Form.Name,
		Email:     s.Form.Email,
		CreatedAt: s.ReceivedAt,
	})
	if err != nil {
		return fmt.Errorf("marshalling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

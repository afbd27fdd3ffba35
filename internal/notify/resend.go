// Package notify delivers outbound email through the Resend REST API:
// team lead alerts, parent confirmation emails, and the stale-partial
// digest.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

// Config holds email delivery settings.
type Config struct {
	APIKey         string
	From           string
	TeamEmail      string
	ResultsBaseURL string
}

// ConfigFromEnv loads delivery settings from READINESS_* variables.
// Returns ok=false when no API key is configured, which disables email.
func ConfigFromEnv() (Config, bool) {
	cfg := Config{
		APIKey:         os.Getenv("READINESS_RESEND_API_KEY"),
		From:           os.Getenv("READINESS_FROM_EMAIL"),
		TeamEmail:      os.Getenv("READINESS_TEAM_EMAIL"),
		ResultsBaseURL: os.Getenv("READINESS_RESULTS_BASE_URL"),
	}
	if cfg.From == "" {
		cfg.From = "Music Readiness Score <info@bestlessonever.com>"
	}
	if cfg.TeamEmail == "" {
		cfg.TeamEmail = "bestlessoninfo@gmail.com"
	}
	return cfg, cfg.APIKey != ""
}

// Client sends email through Resend.
type Client struct {
	cfg      Config
	endpoint string
	http     *http.Client
}

// NewClient creates a notify client.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:      cfg,
		endpoint: resendEndpoint,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

type emailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// send posts one email to the Resend API.
func (c *Client) send(ctx context.Context, to, subject, body string) error {
	payload, err := json.Marshal(emailRequest{
		From:    c.cfg.From,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("resend returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}

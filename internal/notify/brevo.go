package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const defaultBrevoURL = "https://api.brevo.com/v3/smtp/email"

// BrevoClient sends transactional email through the Brevo REST API.
type BrevoClient struct {
	Client      *http.Client
	APIKey      string
	SenderName  string
	SenderEmail string
	// BaseURL can be overridden in tests.
	BaseURL string
}

type brevoAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoEmail struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	Cc          []brevoAddress `json:"cc,omitempty"`
	Bcc         []brevoAddress `json:"bcc,omitempty"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

func addresses(emails []string) []brevoAddress {
	if len(emails) == 0 {
		return nil
	}
	out := make([]brevoAddress, 0, len(emails))
	for _, e := range emails {
		out = append(out, brevoAddress{Email: e})
	}
	return out
}

func (c *BrevoClient) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients")
	}
	payload := brevoEmail{
		Sender:      brevoAddress{Name: c.SenderName, Email: c.SenderEmail},
		To:          addresses(msg.To),
		Cc:          addresses(msg.Cc),
		Bcc:         addresses(msg.Bcc),
		Subject:     msg.Subject,
		HTMLContent: msg.HTML,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	url := c.BaseURL
	if url == "" {
		url = defaultBrevoURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK, http.StatusAccepted:
		return nil
	case http.StatusTooManyRequests:
		return fmt.Errorf("brevo rate limit (429)")
	default:
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
}

// Package adapter holds outbound integrations with external systems. The
// only integration today is the school's transactional mail gateway, used to
// deliver password-reset tokens.
package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/avasilcai/school-admin/internal/config"
	"github.com/avasilcai/school-admin/internal/logger"
)

// mailMessage is the gateway's wire format for a transactional message.
type mailMessage struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	TextBody string `json:"text_body"`
}

// mailGateway sends transactional mail through an HTTP gateway. It implements
// service.Notifier.
type mailGateway struct {
	client *resty.Client
	sender string

	logger *logger.Logger
}

// NewMailGateway constructs a mail-gateway notifier from cfg. It normalises
// and validates the gateway base URL and configures the underlying HTTP
// client with the request timeout and API key.
//
// Returns an error if cfg.GatewayAddress is empty or cannot be parsed as a
// valid URL.
func NewMailGateway(cfg config.Mail, logger *logger.Logger) (*mailGateway, error) {
	baseURL, err := normalizeBaseURL(cfg.GatewayAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid mail gateway address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &mailGateway{client: client, sender: cfg.Sender, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SendPasswordResetToken POSTs a plain-text reset message to the gateway's
// POST /v1/messages endpoint. The token is included verbatim; the account
// holder pastes it into the reset form before expiry.
func (m *mailGateway) SendPasswordResetToken(ctx context.Context, email, token string, expiry time.Time) error {
	message := mailMessage{
		From:    m.sender,
		To:      email,
		Subject: "Password reset code",
		TextBody: fmt.Sprintf(
			"Your password reset code is %s\n\nIt expires at %s. If you did not request a reset, ignore this message.",
			token, expiry.UTC().Format(time.RFC1123),
		),
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(message).
		Post("/v1/messages")
	if err != nil {
		return fmt.Errorf("mail gateway request: %w", err)
	}

	return mapHTTPError(resp)
}

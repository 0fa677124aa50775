// Package email delivers studio notifications over SMTP.
package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelier-interiors/studio-api/internal/core/ports"
)

const dialTimeout = 10 * time.Second

// Config holds the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Sender implements ports.Mailer over a STARTTLS SMTP connection.
type Sender struct {
	cfg  Config
	auth smtp.Auth
	log  zerolog.Logger
}

// NewSender validates the relay configuration and returns a Sender.
func NewSender(cfg Config, log zerolog.Logger) (*Sender, error) {
	if cfg.Host == "" {
		return nil, errors.New("email: SMTP host is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}

	var auth smtp.Auth
	if cfg.Username != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &Sender{cfg: cfg, auth: auth, log: log.With().Str("component", "email").Logger()}, nil
}

// Send delivers a single message. The connection is per-call; contact-form
// volume does not justify pooling.
func (s *Sender) Send(ctx context.Context, msg ports.Message) error {
	if msg.To == "" {
		return errors.New("email: recipient is required")
	}

	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprintf("%d", s.cfg.Port))
	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	defer func() { _ = conn.Close() }()

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsConfig := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	if s.auth != nil {
		if err := client.Auth(s.auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(msg.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(buildMessage(msg)); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close message: %w", err)
	}

	s.log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("email sent")
	return client.Quit()
}

// buildMessage assembles the RFC 5322 payload. HTML bodies take precedence
// over plain text when both are set.
func buildMessage(msg ports.Message) []byte {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("From: %s\r\n", msg.From))
	b.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	if msg.HTML != "" {
		b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n\r\n")
		b.WriteString(msg.HTML)
	} else {
		b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
		b.WriteString(msg.Text)
	}

	return []byte(b.String())
}

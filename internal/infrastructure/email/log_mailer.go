package email

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/atelier-interiors/studio-api/internal/core/ports"
)

// LogMailer writes messages to the log instead of a relay. Used when no
// SMTP host is configured, typically local development.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log.With().Str("component", "email").Logger()}
}

func (m *LogMailer) Send(_ context.Context, msg ports.Message) error {
	m.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("text", msg.Text).
		Msg("email suppressed (no SMTP relay configured)")
	return nil
}

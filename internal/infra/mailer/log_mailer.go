package mailer

import (
	"context"
	"log/slog"
	"time"
)

// LogMailer records PIN deliveries in the application log instead of sending mail.
// The PIN itself is only written when exposePIN is set, which bootstrap never does
// in release mode.
type LogMailer struct {
	logger    *slog.Logger
	exposePIN bool
}

func NewLogMailer(logger *slog.Logger, exposePIN bool) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger, exposePIN: exposePIN}
}

func (m *LogMailer) SendPIN(ctx context.Context, email, pin string, expiresAt time.Time) error {
	attrs := []slog.Attr{
		slog.String("to", email),
		slog.Time("expires_at", expiresAt),
	}
	if m.exposePIN {
		attrs = append(attrs, slog.String("pin", pin))
	}
	m.logger.LogAttrs(ctx, slog.LevelInfo, "pin delivery", attrs...)
	return nil
}

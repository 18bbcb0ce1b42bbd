package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/karobar/backoffice/internal/infrastructure/config"
)

// SMTPNotifier delivers reminder notifications over plain SMTP. Delivery is
// best effort; callers decide what a failure means.
type SMTPNotifier struct {
	cfg    *config.SMTPConfig
	logger *zap.Logger
}

// NewSMTPNotifier creates a notifier for the given SMTP settings
func NewSMTPNotifier(cfg *config.SMTPConfig, logger *zap.Logger) *SMTPNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMTPNotifier{cfg: cfg, logger: logger}
}

// Notify sends one message to the configured recipient
func (n *SMTPNotifier) Notify(ctx context.Context, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	from := n.cfg.From
	if from == "" {
		from = n.cfg.Username
	}
	msg := strings.Join([]string{
		"From: " + from,
		"To: " + n.cfg.To,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, from, []string{n.cfg.To}, []byte(msg)); err != nil {
		return fmt.Errorf("sending notification mail: %w", err)
	}
	n.logger.Debug("notification mail sent", zap.String("subject", subject))
	return nil
}

// LogNotifier writes notifications to the application log. It stands in for
// SMTPNotifier when no mail host is configured.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

// Notify logs the notification instead of delivering it
func (n *LogNotifier) Notify(_ context.Context, subject, body string) error {
	n.logger.Info("notification",
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}

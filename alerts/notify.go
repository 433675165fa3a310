package alerts

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"
)

// LogNotifier writes alerts to the structured log. It is the default
// sink when no mail transport is configured.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, rep Report) error {
	n.logger.Warn().
		Str("symbol", rep.Symbol).
		Str("signal", string(rep.Result.FinalSignal)).
		Int("strength", rep.Result.SignalStrength).
		Int("level", rep.Level).
		Float64("price", rep.Result.CurrentPrice).
		Str("reason", rep.Result.LevelReason).
		Msg(Subject(rep))
	return nil
}

// SMTPNotifier mails alerts. Auth is skipped when Username is empty,
// for local relays.
type SMTPNotifier struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

func (n *SMTPNotifier) Notify(_ context.Context, rep Report) error {
	if n.Host == "" || n.From == "" || len(n.To) == 0 {
		return fmt.Errorf("smtp notifier not configured")
	}

	msg := strings.Join([]string{
		"From: " + n.From,
		"To: " + strings.Join(n.To, ", "),
		"Subject: " + Subject(rep),
		"",
		Body(rep),
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", n.Host, n.Port)

	var auth smtp.Auth
	if n.Username != "" {
		auth = smtp.PlainAuth("", n.Username, n.Password, n.Host)
	}

	if err := smtp.SendMail(addr, auth, n.From, n.To, []byte(msg)); err != nil {
		return fmt.Errorf("send alert mail: %w", err)
	}
	return nil
}

// Package mailer delivers transactional email over SMTP. Delivery failures
// are reported to the caller, never raised as hard errors, so a broken mail
// relay cannot lock users out of the login flow.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/splitmoney/splitmoney/pkg/config"
)

// DeliveryResult mirrors what the login challenge reports back to clients.
type DeliveryResult struct {
	Status  string // "sent" or "failed"
	Message string
}

const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// Sender sends OTP codes to account email addresses.
type Sender interface {
	SendOtp(ctx context.Context, to, code string) DeliveryResult
}

type smtpSender struct {
	cfg    *config.Smtp
	logger *slog.Logger
}

// New returns an SMTP-backed Sender.
func New(cfg *config.Smtp, logger *slog.Logger) Sender {
	return &smtpSender{cfg: cfg, logger: logger}
}

func (s *smtpSender) SendOtp(ctx context.Context, to, code string) DeliveryResult {
	log := s.logger.With("context", "SendOtp", "to", to)
	log.Debug("SendOtp called")

	subject := "Your SplitMoney verification code"
	body := fmt.Sprintf(
		"Your one-time verification code is %s.\r\n\r\n"+
			"The code expires in 10 minutes. If you did not request it, ignore this email.\r\n",
		code,
	)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		log.Error("SendOtp failed", "error", err)
		return DeliveryResult{Status: StatusFailed, Message: err.Error()}
	}
	log.Info("SendOtp successful")
	return DeliveryResult{Status: StatusSent, Message: "OTP sent to registered email"}
}

package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go-landing-mailer/config"
	"go-landing-mailer/internal/domain"
	"go-landing-mailer/pkg/metrics"

	"github.com/wneessen/go-mail"
)

// ErrNotConfigured is returned when the relay host or the sender credential is missing
var ErrNotConfigured = errors.New("email service is not configured")

// TransportError wraps any failure while building or delivering a message
type TransportError struct {
	Stage string // envelope, client or deliver
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("email %s: %v", e.Stage, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// EmailService sends notifications through an authenticated STARTTLS SMTP session.
// A new session is opened and closed for every message.
type EmailService struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
	toEmail   string
	auth      mail.SMTPAuthType
	timeout   time.Duration
	tlsConfig *tls.Config
	log       *slog.Logger
}

type Option func(*EmailService)

// WithTLSConfig replaces the system trust store based TLS settings used for STARTTLS
func WithTLSConfig(cfg *tls.Config) Option {
	return func(s *EmailService) {
		s.tlsConfig = cfg
	}
}

// NewEmailService creates a new email service from the relay configuration
func NewEmailService(cfg config.SMTPConfig, log *slog.Logger, opts ...Option) *EmailService {
	auth := mail.SMTPAuthLogin
	if cfg.AuthMechanism == "plain" {
		auth = mail.SMTPAuthPlain
	}

	s := &EmailService{
		host:      cfg.Host,
		port:      cfg.Port,
		username:  cfg.Sender, // the relay login is the sender mailbox
		password:  cfg.Password,
		fromEmail: cfg.Sender,
		toEmail:   cfg.Recipient,
		auth:      auth,
		timeout:   cfg.Timeout,
		log:       log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsConfigured checks if the email service has what it needs to attempt a delivery
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.port > 0 && s.username != "" && s.password != ""
}

// Deliver sends msg and returns the failure cause, if any
func (s *EmailService) Deliver(ctx context.Context, msg domain.RenderedMessage) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	m := mail.NewMsg()
	if err := m.From(s.fromEmail); err != nil {
		return &TransportError{Stage: "envelope", Err: fmt.Errorf("invalid sender: %w", err)}
	}
	if err := m.To(s.toEmail); err != nil {
		return &TransportError{Stage: "envelope", Err: fmt.Errorf("invalid recipient: %w", err)}
	}
	// strip CR/LF so form input cannot inject headers through the subject
	m.Subject(strings.NewReplacer("\r", "", "\n", " ").Replace(msg.Subject))
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(s.auth),
		mail.WithUsername(s.username),
		mail.WithPassword(s.password),
	}
	if s.timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.timeout))
	}
	if s.tlsConfig != nil {
		opts = append(opts, mail.WithTLSConfig(s.tlsConfig))
	}

	client, err := mail.NewClient(s.host, opts...)
	if err != nil {
		return &TransportError{Stage: "client", Err: err}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	// DialAndSendWithContext closes the session on every path
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return &TransportError{Stage: "deliver", Err: err}
	}
	return nil
}

// Send delivers msg and reports success. Failures are logged, never returned.
func (s *EmailService) Send(ctx context.Context, msg domain.RenderedMessage) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Panic while sending email", "panic", r, "subject", msg.Subject)
			ok = false
		}
		if ok {
			metrics.MailSendTotal.WithLabelValues("success").Inc()
		} else {
			metrics.MailSendTotal.WithLabelValues("failure").Inc()
		}
	}()

	if err := s.Deliver(ctx, msg); err != nil {
		if errors.Is(err, ErrNotConfigured) {
			s.log.Error("Email password not configured", "smtp_host", s.host, "error", err)
		} else {
			s.log.Error("Error sending email",
				"smtp_host", s.host,
				"smtp_port", s.port,
				"subject", msg.Subject,
				"error", err,
			)
		}
		return false
	}

	s.log.Debug("Email sent", "smtp_host", s.host, "to", s.toEmail, "subject", msg.Subject)
	return true
}

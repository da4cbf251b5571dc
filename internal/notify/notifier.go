package notify

import (
	"context"
	"sync"
	"time"

	"github.com/resend/resend-go/v2"
	"github.com/sirupsen/logrus"

	"portfolio-backend-go/internal/config"
	"portfolio-backend-go/internal/metrics"
	"portfolio-backend-go/internal/models"
	"portfolio-backend-go/internal/storage"
)

// Outcome classifies a notification attempt.
type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeFailed  Outcome = "failed"
	OutcomeSkipped Outcome = "skipped"
)

// Stats is the aggregate view over notification outcomes. It is the only way
// email log records are ever read back.
type Stats struct {
	Sent    uint64 `json:"sent"`
	Failed  uint64 `json:"failed"`
	Skipped uint64 `json:"skipped"`
}

// Notifier sends contact notifications through the Resend API and records
// each outcome. It is fire-and-forget from the caller's point of view: no
// outcome, including a failed provider call or a failed log write, ever
// propagates back to the originating request.
type Notifier struct {
	client  *resend.Client
	from    string
	admin   string
	logs    storage.Remote
	metrics *metrics.Metrics

	mu    sync.Mutex
	stats Stats
}

// NewNotifier creates the dispatcher. When the provider credential is absent
// the notifier stays constructed but disabled: every attempt is skipped
// without network I/O.
func NewNotifier(cfg *config.Config, remote storage.Remote, m *metrics.Metrics) *Notifier {
	n := &Notifier{
		from:    cfg.Mail.FromAddress,
		admin:   cfg.Mail.AdminAddress,
		logs:    remote,
		metrics: m,
	}

	if !cfg.MailConfigured() {
		logrus.Warn("Resend API key missing, contact notifications disabled")
		return n
	}

	n.client = resend.NewClient(cfg.Mail.ResendAPIKey)
	logrus.Info("Resend client initialised")
	return n
}

// Notify dispatches a notification for a stored message.
func (n *Notifier) Notify(ctx context.Context, msg models.Message) {
	n.Send(ctx, msg)
}

// Send renders and submits the notification email, returning the outcome.
func (n *Notifier) Send(ctx context.Context, msg models.Message) Outcome {
	if n.client == nil {
		n.record(OutcomeSkipped)
		return OutcomeSkipped
	}

	html, err := renderContactEmail(msg)
	if err != nil {
		logrus.Errorf("Failed to render notification email: %v", err)
		n.record(OutcomeFailed)
		return OutcomeFailed
	}
	subject := contactSubject(msg)

	_, err = n.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.admin},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		logrus.Errorf("Failed to send contact notification: %v", err)
		n.logOutcome(ctx, msg, subject, html, OutcomeFailed, nil)
		n.record(OutcomeFailed)
		return OutcomeFailed
	}

	now := time.Now().UTC()
	logrus.Infof("Contact notification sent to %s", n.admin)
	n.logOutcome(ctx, msg, subject, html, OutcomeSent, &now)
	n.record(OutcomeSent)
	return OutcomeSent
}

// Stats returns the aggregate outcome counts for this process.
func (n *Notifier) Stats() Stats {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stats
}

// Ready reports whether the provider credential is configured.
func (n *Notifier) Ready() bool {
	return n.client != nil
}

// logOutcome records the attempt in the email log. Logging is best-effort: a
// failure is reported to the diagnostic stream and dropped.
func (n *Notifier) logOutcome(ctx context.Context, msg models.Message, subject, body string, outcome Outcome, sentAt *time.Time) {
	entry := models.EmailLog{
		Recipient: n.admin,
		Subject:   subject,
		Body:      body,
		Status:    string(outcome),
		SentAt:    sentAt,
	}
	if err := n.logs.RecordEmail(ctx, entry); err != nil {
		logrus.Errorf("Failed to record email log for message %s: %v", msg.ID, err)
	}
}

func (n *Notifier) record(outcome Outcome) {
	n.metrics.EmailOutcomes.WithLabelValues(string(outcome)).Inc()

	n.mu.Lock()
	defer n.mu.Unlock()
	switch outcome {
	case OutcomeSent:
		n.stats.Sent++
	case OutcomeFailed:
		n.stats.Failed++
	case OutcomeSkipped:
		n.stats.Skipped++
	}
}

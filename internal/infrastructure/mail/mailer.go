package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
	"pratham.backend/internal/config"
	"pratham.backend/internal/usecases"
	"pratham.backend/pkg/logger"
)

const defaultTimeout = 10 * time.Second

const reportSubject = "Your Canada Study Visa Eligibility Report"

// MailClient is the subset of the go-mail client the mailer relies on
type MailClient interface {
	DialAndSend(...*mail.Msg) error
}

// ReportMailer emails the eligibility report summary. Without an SMTP
// host configured it only logs the request, which is what the original
// send-report endpoint did.
type ReportMailer struct {
	client MailClient
	from   string
}

// NewReportMailer creates a new report mailer
func NewReportMailer(cfg config.SMTPConfig) (*ReportMailer, error) {
	m := &ReportMailer{from: cfg.From}
	if cfg.Host == "" {
		return m, nil
	}

	client, err := mail.NewClient(
		cfg.Host,
		mail.WithTimeout(defaultTimeout),
		mail.WithPort(cfg.Port),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, err
	}

	m.client = client
	return m, nil
}

// SendReport delivers (or logs) the report summary for a recipient
func (m *ReportMailer) SendReport(ctx context.Context, recipient string, score int, eligible bool) error {
	if m.client == nil {
		logger.Info(ctx, "SMTP not configured, logging eligibility report instead",
			zap.String("recipient", recipient),
			zap.Int("score", score),
			zap.Bool("eligible", eligible),
		)
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.To(recipient); err != nil {
		return err
	}
	if err := msg.From(m.from); err != nil {
		return err
	}

	msg.Subject(reportSubject)
	msg.SetBodyString(mail.TypeTextPlain, reportBody(score, eligible))

	return m.client.DialAndSend(msg)
}

func reportBody(score int, eligible bool) string {
	verdict := "Additional preparation is recommended before applying."
	if eligible {
		verdict = "You are eligible for a Canada study visa!"
	}
	return fmt.Sprintf(
		"Thank you for checking your eligibility with Pratham International.\n\n"+
			"Your eligibility score: %d%%\n%s\n\n%s\n",
		score, verdict, usecases.MessageForScore(score),
	)
}

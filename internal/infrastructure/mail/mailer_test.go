package mail

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
	"pratham.backend/internal/config"
	"pratham.backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("development")
	os.Exit(m.Run())
}

type mailClientStub struct {
	sent []*mail.Msg
	err  error
}

func (c *mailClientStub) DialAndSend(msgs ...*mail.Msg) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, msgs...)
	return nil
}

func TestNewReportMailer_NoHostDisablesDelivery(t *testing.T) {
	m, err := NewReportMailer(config.SMTPConfig{From: "reports@example.com"})
	require.NoError(t, err)
	assert.Nil(t, m.client)

	// log-only mode still succeeds
	require.NoError(t, m.SendReport(context.Background(), "a@b.com", 85, true))
}

func TestNewReportMailer_WithHost(t *testing.T) {
	m, err := NewReportMailer(config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "user",
		Password: "pass",
		From:     "reports@example.com",
	})
	require.NoError(t, err)
	assert.NotNil(t, m.client)
}

func TestSendReport_DeliversMessage(t *testing.T) {
	stub := &mailClientStub{}
	m := &ReportMailer{client: stub, from: "reports@example.com"}

	require.NoError(t, m.SendReport(context.Background(), "a@b.com", 85, true))
	require.Len(t, stub.sent, 1)
}

func TestSendReport_InvalidAddresses(t *testing.T) {
	stub := &mailClientStub{}
	m := &ReportMailer{client: stub, from: "reports@example.com"}
	assert.Error(t, m.SendReport(context.Background(), "not-an-address", 85, true))

	m = &ReportMailer{client: stub, from: "not-an-address"}
	assert.Error(t, m.SendReport(context.Background(), "a@b.com", 85, true))
}

func TestSendReport_ClientError(t *testing.T) {
	stub := &mailClientStub{err: errors.New("dial failed")}
	m := &ReportMailer{client: stub, from: "reports@example.com"}
	assert.Error(t, m.SendReport(context.Background(), "a@b.com", 85, true))
}

func TestReportBody(t *testing.T) {
	eligible := reportBody(85, true)
	assert.Contains(t, eligible, "85%")
	assert.Contains(t, eligible, "eligible for a Canada study visa")

	notEligible := reportBody(60, false)
	assert.Contains(t, notEligible, "60%")
	assert.Contains(t, notEligible, "Additional preparation")
}

package notify

import (
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/salman854/inventory-agents/internal/config"
	"github.com/salman854/inventory-agents/internal/models"
	"github.com/salman854/inventory-agents/internal/report"
	"github.com/salman854/inventory-agents/internal/store"
)

const emailAgentName = "Email Agent"

// mailSender is the slice of gomail the agent uses; tests inject a fake.
type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Attachment is a file carried by an email, by name and content.
type Attachment struct {
	Filename string
	Content  []byte
}

// EmailAgent sends mail over SMTP and records every send outcome in the
// activity log.
type EmailAgent struct {
	store     *store.Store
	logger    *zap.Logger
	dialer    mailSender
	sender    string
	recipient string
	name      string
}

// NewEmailAgent builds the agent. Missing SMTP credentials leave it
// disabled: sends log a warning and report failure without erroring.
func NewEmailAgent(st *store.Store, logger *zap.Logger, cfg config.SMTPConfig) *EmailAgent {
	a := &EmailAgent{
		store:     st,
		logger:    logger,
		sender:    cfg.Email,
		recipient: cfg.Recipient,
		name:      emailAgentName,
	}
	if !cfg.Enabled() {
		logger.Warn("SMTP credentials not found, email notifications will not be sent")
		return a
	}
	a.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Email, cfg.Password)
	return a
}

// Send delivers one email with a plain body, an HTML alternative, and
// optional attachments. The outcome is appended to the activity log.
func (a *EmailAgent) Send(ctx context.Context, subject, body string, attachments []Attachment) bool {
	if a.dialer == nil {
		a.logger.Warn("email not configured, cannot send message")
		return false
	}

	m := gomail.NewMessage()
	m.SetHeader("From", a.sender)
	m.SetHeader("To", a.recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.AddAlternative("text/html", "<pre>"+html.EscapeString(body)+"</pre>")
	for _, att := range attachments {
		content := att.Content
		m.Attach(att.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	a.logger.Info("sending email",
		zap.String("to", a.recipient),
		zap.String("subject", subject))

	// DialAndSend has no context support; run it aside so a stalled SMTP
	// conversation cannot wedge the monitor loop past its deadline.
	errCh := make(chan error, 1)
	go func() { errCh <- a.dialer.DialAndSend(m) }()
	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		err = ctx.Err()
	}

	if err != nil {
		details := fmt.Sprintf("Failed to send email to %s: %v", a.recipient, err)
		a.logger.Error("email send failed", zap.Error(err))
		a.store.AppendActivity(a.name, models.ActionEmailError, details)
		return false
	}
	a.store.AppendActivity(a.name, models.ActionSendEmail,
		fmt.Sprintf("Sent email to %s with subject: %s", a.recipient, subject))
	return true
}

// SendActivityNotification sends an immediate notification about an
// important activity. Satisfies Alerter.
func (a *EmailAgent) SendActivityNotification(ctx context.Context, message string) bool {
	subject := "🚨 Inventory Activity Notification"
	body := fmt.Sprintf("📢 New inventory activity:\n\n%s\n\n⏰ Timestamp: %s\n",
		message, time.Now().Format(time.DateTime))
	return a.Send(ctx, subject, body, nil)
}

// Alert satisfies Alerter.
func (a *EmailAgent) Alert(ctx context.Context, message string) bool {
	return a.SendActivityNotification(ctx, message)
}

// SendDailyReport emails the status snapshot, the last five activities,
// and a transient CSV export of all records. The export file is removed
// regardless of the send outcome.
func (a *EmailAgent) SendDailyReport(ctx context.Context) bool {
	path, err := report.WriteCSV(a.store.Products())
	if err != nil {
		a.logger.Error("failed to generate CSV report", zap.Error(err))
		return false
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			a.logger.Error("failed to remove report file", zap.String("path", path), zap.Error(err))
		}
	}()

	content, err := os.ReadFile(path)
	if err != nil {
		a.logger.Error("failed to read report file", zap.String("path", path), zap.Error(err))
		return false
	}

	subject := fmt.Sprintf("Inventory Daily Report - %s", time.Now().Format("2006-01-02"))
	body := a.reportBody("📎 See attached CSV for full inventory details.")
	return a.Send(ctx, subject, body, []Attachment{{Filename: path, Content: content}})
}

// SendWeeklyReport is the spreadsheet variant of the daily report.
func (a *EmailAgent) SendWeeklyReport(ctx context.Context) bool {
	path, err := report.WriteXLSX(a.store.Products())
	if err != nil {
		a.logger.Error("failed to generate XLSX report", zap.Error(err))
		return false
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			a.logger.Error("failed to remove report file", zap.String("path", path), zap.Error(err))
		}
	}()

	content, err := os.ReadFile(path)
	if err != nil {
		a.logger.Error("failed to read report file", zap.String("path", path), zap.Error(err))
		return false
	}

	subject := fmt.Sprintf("Inventory Weekly Report - %s", time.Now().Format("2006-01-02"))
	body := a.reportBody("📎 See attached spreadsheet for full inventory details.")
	return a.Send(ctx, subject, body, []Attachment{{Filename: path, Content: content}})
}

func (a *EmailAgent) reportBody(footer string) string {
	status := a.store.Status()
	activities := a.store.RecentActivities(5)
	lines := make([]string, 0, len(activities))
	for i, act := range activities {
		lines = append(lines, fmt.Sprintf("%d. %s - %s: %s",
			i+1, act.Timestamp.Format(time.DateTime), act.Action, act.Details))
	}
	return fmt.Sprintf(`📊 Inventory Status Report:

🛍️ Total Products: %d
❌ Out of Stock Items: %d
⚠️ Low Stock Items: %d
💰 Total Inventory Value: $%s

📅 Recent Activities:
%s

%s
`, status.TotalProducts, status.OutOfStock, status.LowStock,
		status.TotalValue.StringFixed(2), strings.Join(lines, "\n"), footer)
}

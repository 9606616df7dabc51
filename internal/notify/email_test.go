package notify

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/salman854/inventory-agents/internal/config"
	"github.com/salman854/inventory-agents/internal/models"
	"github.com/salman854/inventory-agents/internal/store"
)

type fakeMailSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeMailSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	dir := t.TempDir()
	s, err := store.Open(config.StoreConfig{
		InventoryFile:   filepath.Join(dir, "inventory.json"),
		ActivityLogFile: filepath.Join(dir, "activity_log.json"),
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func lastActivity(t *testing.T, s *store.Store) models.Activity {
	t.Helper()
	acts := s.RecentActivities(1)
	if len(acts) == 0 {
		t.Fatalf("no activity entries")
	}
	return acts[0]
}

func enabledSMTP() config.SMTPConfig {
	return config.SMTPConfig{
		Host:      "smtp.example.com",
		Port:      587,
		Email:     "inventory@example.com",
		Password:  "secret",
		Recipient: "owner@example.com",
	}
}

func TestEmailSendLogsSuccess(t *testing.T) {
	s := newTestStore(t)
	a := NewEmailAgent(s, zap.NewNop(), enabledSMTP())
	sender := &fakeMailSender{}
	a.dialer = sender

	if !a.Send(context.Background(), "Hello", "body text", nil) {
		t.Fatalf("send should succeed")
	}
	if len(sender.sent) != 1 {
		t.Fatalf("messages sent = %d, want 1", len(sender.sent))
	}
	act := lastActivity(t, s)
	if act.Action != models.ActionSendEmail || act.Agent != "Email Agent" {
		t.Fatalf("activity = %+v", act)
	}
	if !strings.Contains(act.Details, "subject: Hello") {
		t.Fatalf("details = %q", act.Details)
	}
}

func TestEmailSendLogsFailureText(t *testing.T) {
	s := newTestStore(t)
	a := NewEmailAgent(s, zap.NewNop(), enabledSMTP())
	a.dialer = &fakeMailSender{err: errors.New("connection refused")}

	if a.Send(context.Background(), "Hello", "body", nil) {
		t.Fatalf("send should fail")
	}
	act := lastActivity(t, s)
	if act.Action != models.ActionEmailError {
		t.Fatalf("action = %s, want email_error", act.Action)
	}
	if !strings.Contains(act.Details, "connection refused") {
		t.Fatalf("failure text not captured: %q", act.Details)
	}
}

func TestEmailDisabledIsWarnOnlyNoOp(t *testing.T) {
	s := newTestStore(t)
	a := NewEmailAgent(s, zap.NewNop(), config.SMTPConfig{Host: "smtp.example.com", Port: 587})
	if a.Send(context.Background(), "Hello", "body", nil) {
		t.Fatalf("disabled channel must report failure")
	}
	if s.ActivityCount() != 0 {
		t.Fatalf("disabled channel must not append entries")
	}
}

func TestDailyReportAttachesAndRemovesExport(t *testing.T) {
	t.Chdir(t.TempDir())
	s := newTestStore(t)
	s.Add("P001", "Wireless Mouse", 50, decimal.NewFromFloat(19.99), "Electronics")
	a := NewEmailAgent(s, zap.NewNop(), enabledSMTP())
	sender := &fakeMailSender{}
	a.dialer = sender

	if !a.SendDailyReport(context.Background()) {
		t.Fatalf("daily report should succeed")
	}
	if len(sender.sent) != 1 {
		t.Fatalf("messages sent = %d, want 1", len(sender.sent))
	}
	leftovers, err := filepath.Glob("inventory_report_*.csv")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(leftovers) != 0 {
		t.Fatalf("transient export not removed: %v", leftovers)
	}
	act := lastActivity(t, s)
	if act.Action != models.ActionSendEmail {
		t.Fatalf("activity = %+v", act)
	}
}

func TestDailyReportRemovesExportOnSendFailure(t *testing.T) {
	t.Chdir(t.TempDir())
	s := newTestStore(t)
	s.Add("P001", "Wireless Mouse", 50, decimal.NewFromFloat(19.99), "Electronics")
	a := NewEmailAgent(s, zap.NewNop(), enabledSMTP())
	a.dialer = &fakeMailSender{err: errors.New("smtp down")}

	if a.SendDailyReport(context.Background()) {
		t.Fatalf("daily report should fail")
	}
	leftovers, _ := filepath.Glob("inventory_report_*.csv")
	if len(leftovers) != 0 {
		t.Fatalf("transient export must be removed even on failure: %v", leftovers)
	}
	if act := lastActivity(t, s); act.Action != models.ActionEmailError {
		t.Fatalf("activity = %+v", act)
	}
}

func TestWeeklyReportUsesSpreadsheet(t *testing.T) {
	t.Chdir(t.TempDir())
	s := newTestStore(t)
	s.Add("P001", "Wireless Mouse", 50, decimal.NewFromFloat(19.99), "Electronics")
	a := NewEmailAgent(s, zap.NewNop(), enabledSMTP())
	sender := &fakeMailSender{}
	a.dialer = sender

	if !a.SendWeeklyReport(context.Background()) {
		t.Fatalf("weekly report should succeed")
	}
	leftovers, _ := filepath.Glob("inventory_report_*.xlsx")
	if len(leftovers) != 0 {
		t.Fatalf("transient export not removed: %v", leftovers)
	}
}

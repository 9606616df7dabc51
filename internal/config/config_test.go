package config

import (
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("INVENTORY_FILE", "")
	t.Setenv("ACTIVITY_LOG_FILE", "")
	t.Setenv("ACTIVITY_LOG_MAX_ENTRIES", "")
	t.Setenv("MONITOR_INTERVAL", "")
	t.Setenv("REPORT_HOUR", "")
	t.Setenv("REPORT_MINUTE", "")
	t.Setenv("SEND_TIMEOUT", "")
	t.Setenv("SMTP_SERVER", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")
	c := LoadEnv()
	if c.Store.InventoryFile != "inventory.json" || c.Store.ActivityLogFile != "activity_log.json" {
		t.Fatalf("store file defaults: %+v", c.Store)
	}
	if c.Store.MaxLogEntries != 0 {
		t.Fatalf("retention default")
	}
	if c.Monitor.Interval != time.Minute {
		t.Fatalf("monitor interval default")
	}
	if c.Monitor.ReportHour != 9 || c.Monitor.ReportMinute != 0 {
		t.Fatalf("report time default")
	}
	if c.Monitor.SendTimeout != 30*time.Second {
		t.Fatalf("send timeout default")
	}
	if c.SMTP.Host != "smtp.gmail.com" || c.SMTP.Port != 587 {
		t.Fatalf("smtp defaults: %+v", c.SMTP)
	}
	if c.Twilio.Enabled() {
		t.Fatalf("twilio should be disabled without credentials")
	}
	if c.SMTP.Enabled() {
		t.Fatalf("smtp should be disabled without credentials")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("INVENTORY_FILE", "/tmp/inv.json")
	t.Setenv("ACTIVITY_LOG_FILE", "/tmp/log.json")
	t.Setenv("ACTIVITY_LOG_MAX_ENTRIES", "500")
	t.Setenv("MONITOR_INTERVAL", "5s")
	t.Setenv("REPORT_HOUR", "18")
	t.Setenv("REPORT_MINUTE", "30")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "token")
	t.Setenv("SMTP_EMAIL", "ops@example.com")
	t.Setenv("SMTP_PASSWORD", "secret")
	t.Setenv("RECIPIENT_EMAIL", "")
	c := LoadEnv()
	if c.Store.InventoryFile != "/tmp/inv.json" || c.Store.ActivityLogFile != "/tmp/log.json" {
		t.Fatalf("store file env: %+v", c.Store)
	}
	if c.Store.MaxLogEntries != 500 {
		t.Fatalf("retention env")
	}
	if c.Monitor.Interval != 5*time.Second {
		t.Fatalf("monitor interval env")
	}
	if c.Monitor.ReportHour != 18 || c.Monitor.ReportMinute != 30 {
		t.Fatalf("report time env")
	}
	if !c.Twilio.Enabled() {
		t.Fatalf("twilio should be enabled")
	}
	if !c.SMTP.Enabled() {
		t.Fatalf("smtp should be enabled")
	}
	if c.SMTP.Recipient != "ops@example.com" {
		t.Fatalf("recipient should fall back to sender, got %q", c.SMTP.Recipient)
	}
}

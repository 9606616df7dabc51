// Package monitor runs the single background task that watches the
// inventory, raises stock alerts through the notification channels, and
// triggers the scheduled reports.
package monitor

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/salman854/inventory-agents/internal/models"
	"github.com/salman854/inventory-agents/internal/notify"
)

// agentName is the agent recorded for alert log entries.
const agentName = "Inventory Manager"

// Inventory is the slice of the store the monitor reads and writes.
type Inventory interface {
	Status() models.Status
	AppendActivity(agent string, action models.Action, details string)
}

// Messenger delivers the report confirmation message.
type Messenger interface {
	SendMessage(ctx context.Context, message string) bool
}

// Reporter sends the scheduled reports.
type Reporter interface {
	SendDailyReport(ctx context.Context) bool
	SendWeeklyReport(ctx context.Context) bool
}

// Monitor polls the inventory on a fixed interval. It is started once
// and stopped once; Stop joins the in-flight tick before returning.
type Monitor struct {
	inv       Inventory
	alerters  []notify.Alerter
	messenger Messenger
	reporter  Reporter
	logger    *zap.Logger

	interval     time.Duration
	reportHour   int
	reportMinute int
	sendTimeout  time.Duration
	now          func() time.Time

	// lastReportDay dedupes the scheduled report: at most one firing per
	// calendar day, however fine the polling granularity.
	lastReportDay string

	cancel context.CancelFunc
	done   chan struct{}
}

// Config carries the monitor's timing knobs.
type Config struct {
	Interval     time.Duration
	ReportHour   int
	ReportMinute int
	SendTimeout  time.Duration
}

// New builds a monitor. Alerts are dispatched to every alerter; the
// messenger and reporter handle the scheduled report path.
func New(inv Inventory, alerters []notify.Alerter, messenger Messenger, reporter Reporter, logger *zap.Logger, cfg Config) *Monitor {
	return &Monitor{
		inv:          inv,
		alerters:     alerters,
		messenger:    messenger,
		reporter:     reporter,
		logger:       logger,
		interval:     cfg.Interval,
		reportHour:   cfg.ReportHour,
		reportMinute: cfg.ReportMinute,
		sendTimeout:  cfg.SendTimeout,
		now:          time.Now,
	}
}

// Start launches the background loop. If today's report time has already
// passed, the missed window is skipped rather than fired late.
func (m *Monitor) Start(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	m.cancel = cancel
	m.done = make(chan struct{})

	now := m.now()
	if !now.Before(m.reportTimeOn(now)) {
		m.lastReportDay = dayKey(now)
	}
	go m.run(ctx)
	m.logger.Info("inventory monitor started", zap.Duration("interval", m.interval))
}

// Stop signals the loop to exit and waits for the current tick, if any,
// to finish.
func (m *Monitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
	m.logger.Info("inventory monitor stopped")
}

func (m *Monitor) run(ctx context.Context) {
	defer close(m.done)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.tick(ctx)
		}
	}
}

// tick performs one monitoring pass. Failures are reported to the
// console logger only; the loop always continues.
func (m *Monitor) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("error in inventory monitoring", zap.Any("panic", r))
		}
	}()
	tctx, cancel := context.WithTimeout(ctx, m.sendTimeout)
	defer cancel()

	status := m.inv.Status()
	if status.OutOfStock > 0 {
		message := fmt.Sprintf("🚨 Alert: %d product(s) out of stock!", status.OutOfStock)
		for _, a := range m.alerters {
			a.Alert(tctx, message)
		}
		m.inv.AppendActivity(agentName, models.ActionOutOfStockAlert,
			fmt.Sprintf("%d product(s) out of stock", status.OutOfStock))
	}
	if status.LowStock > 0 {
		message := fmt.Sprintf("⚠️ Alert: %d product(s) low on stock!", status.LowStock)
		for _, a := range m.alerters {
			a.Alert(tctx, message)
		}
		m.inv.AppendActivity(agentName, models.ActionLowStockAlert,
			fmt.Sprintf("%d product(s) low on stock", status.LowStock))
	}

	m.maybeSendReports(tctx)
}

// maybeSendReports fires the daily report at most once per day, at or
// after the configured time. Mondays also get the weekly spreadsheet.
func (m *Monitor) maybeSendReports(ctx context.Context) {
	now := m.now()
	day := dayKey(now)
	if day == m.lastReportDay || now.Before(m.reportTimeOn(now)) {
		return
	}
	m.lastReportDay = day

	m.reporter.SendDailyReport(ctx)
	if now.Weekday() == time.Monday {
		m.reporter.SendWeeklyReport(ctx)
	}
	m.messenger.SendMessage(ctx, "📅 Daily inventory report has been sent to your email!")
}

func (m *Monitor) reportTimeOn(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), m.reportHour, m.reportMinute, 0, 0, t.Location())
}

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

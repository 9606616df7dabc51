package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/salman854/inventory-agents/internal/config"
	"github.com/salman854/inventory-agents/internal/models"
	"github.com/salman854/inventory-agents/internal/store"
)

const whatsAppAgentName = "WhatsApp Agent"

// messageCreator is the slice of the Twilio API the agent uses.
// client.Api satisfies it; tests inject a fake.
type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// WhatsAppAgent sends WhatsApp messages through Twilio and records every
// send outcome in the activity log.
type WhatsAppAgent struct {
	store  *store.Store
	gen    Generator
	logger *zap.Logger
	client messageCreator
	from   string
	to     string
	name   string
}

// NewWhatsAppAgent builds the agent. Missing Twilio credentials leave it
// disabled: sends log a warning and report failure without erroring.
func NewWhatsAppAgent(st *store.Store, gen Generator, logger *zap.Logger, cfg config.TwilioConfig, timeout time.Duration) *WhatsAppAgent {
	a := &WhatsAppAgent{
		store:  st,
		gen:    gen,
		logger: logger,
		from:   cfg.WhatsAppNumber,
		to:     cfg.RecipientNumber,
		name:   whatsAppAgentName,
	}
	if !cfg.Enabled() {
		logger.Warn("Twilio credentials not found, WhatsApp notifications will not be sent")
		return a
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	if timeout > 0 {
		client.Client.SetTimeout(timeout)
	}
	a.client = client.Api
	return a
}

// SendMessage delivers a message and appends a notification entry. The
// real send outcome is logged as its own entry.
func (a *WhatsAppAgent) SendMessage(ctx context.Context, message string) bool {
	if a.client == nil {
		a.logger.Warn("WhatsApp not configured, cannot send message")
		return false
	}
	a.logger.Info("whatsapp message",
		zap.String("agent", a.name),
		zap.String("message", message))
	ok := a.sendReal(ctx, message)
	a.store.AppendActivity(a.name, models.ActionNotification, message)
	return ok
}

func (a *WhatsAppAgent) sendReal(_ context.Context, message string) bool {
	params := &openapi.CreateMessageParams{}
	params.SetFrom("whatsapp:" + strings.TrimPrefix(a.from, "whatsapp:"))
	params.SetTo("whatsapp:" + strings.TrimPrefix(a.to, "whatsapp:"))
	params.SetBody(message)

	msg, err := a.client.CreateMessage(params)
	if err != nil {
		details := fmt.Sprintf("Failed to send WhatsApp: %v", err)
		a.logger.Error("whatsapp send failed", zap.Error(err))
		a.store.AppendActivity(a.name, models.ActionWhatsAppError, details)
		return false
	}
	sid := ""
	if msg != nil && msg.Sid != nil {
		sid = *msg.Sid
	}
	a.logger.Info("whatsapp message sent", zap.String("sid", sid))
	a.store.AppendActivity(a.name, models.ActionWhatsAppNotification,
		fmt.Sprintf("Sent WhatsApp to %s: %s", a.to, message))
	return true
}

// Alert satisfies Alerter.
func (a *WhatsAppAgent) Alert(ctx context.Context, message string) bool {
	return a.SendMessage(ctx, message)
}

// NotifyActivity sends a summary of the most recent activity entries.
func (a *WhatsAppAgent) NotifyActivity(ctx context.Context) bool {
	activities := a.store.RecentActivities(5)
	if len(activities) == 0 {
		return a.SendMessage(ctx, "No recent activities to report.")
	}
	var sb strings.Builder
	sb.WriteString("📊 Recent Inventory Activities:\n")
	for i, act := range activities {
		sb.WriteString(fmt.Sprintf("\n%d. ⏰ %s\n   👤 %s\n   🛠️ %s\n   📝 %s\n",
			i+1, act.Timestamp.Format(time.DateTime), act.Agent, act.Action, act.Details))
	}
	return a.SendMessage(ctx, sb.String())
}

// SuggestActions asks the AI service for management suggestions based on
// the current status and relays the answer. A generation failure is
// relayed as the message body instead of being raised.
func (a *WhatsAppAgent) SuggestActions(ctx context.Context) bool {
	status := a.store.Status()
	prompt := fmt.Sprintf(`Based on this inventory status, suggest 3-5 management actions:
- Total products: %d
- Out of stock: %d
- Low stock: %d
- Total inventory value: $%s

Respond in a conversational WhatsApp message format with emojis.`,
		status.TotalProducts, status.OutOfStock, status.LowStock, status.TotalValue.StringFixed(2))

	suggestion, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		suggestion = "Sorry, I encountered an error: " + err.Error()
	}
	return a.SendMessage(ctx, "🤖 AI Suggestions:\n"+suggestion)
}

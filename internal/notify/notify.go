// Package notify implements the WhatsApp and email notification
// channels. Both record their send outcomes in the store's activity log;
// send failures are captured there, never raised to the caller.
package notify

import "context"

// Alerter is the send capability shared by every notification channel.
// The monitor loop stays channel-agnostic by dispatching through it.
type Alerter interface {
	// Alert delivers a short alert message and reports whether the
	// channel accepted it.
	Alert(ctx context.Context, message string) bool
}

// Generator produces suggestion text for a prompt. Satisfied by the AI
// service; fakes stand in for it in tests.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

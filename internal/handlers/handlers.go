// Package handlers exposes the inventory over a small HTTP API for
// inspection and control. All state lives in the injected store; the
// handlers are safe to serve while the monitor loop is running.
package handlers

import (
	"go.uber.org/zap"

	"github.com/salman854/inventory-agents/internal/notify"
	"github.com/salman854/inventory-agents/internal/store"
)

// Handlers holds every dependency the HTTP layer needs.
type Handlers struct {
	Store    *store.Store
	WhatsApp *notify.WhatsAppAgent
	Email    *notify.EmailAgent
	Logger   *zap.Logger
}

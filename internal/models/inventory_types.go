package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a single inventory record. The store keys products by their
// ID, so the ID itself is not repeated inside the persisted object.
type Product struct {
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	LastUpdated time.Time       `json:"last_updated"`
}

// Action identifies the kind of an activity log entry.
type Action string

const (
	ActionAddProduct           Action = "add_product"
	ActionUpdateQuantity       Action = "update_quantity"
	ActionSellProduct          Action = "sell_product"
	ActionDeleteProduct        Action = "delete_product"
	ActionNotification         Action = "notification"
	ActionWhatsAppNotification Action = "whatsapp_notification"
	ActionWhatsAppError        Action = "whatsapp_error"
	ActionSendEmail            Action = "send_email"
	ActionEmailError           Action = "email_error"
	ActionOutOfStockAlert      Action = "out_of_stock_alert"
	ActionLowStockAlert        Action = "low_stock_alert"
)

// Activity is one append-only activity log entry. Entries are never
// mutated or reordered once appended.
type Activity struct {
	Timestamp time.Time `json:"timestamp"`
	Agent     string    `json:"agent"`
	Action    Action    `json:"action"`
	Details   string    `json:"details"`
}

// Status is an aggregate snapshot of the inventory.
type Status struct {
	TotalProducts int             `json:"total_products"`
	OutOfStock    int             `json:"out_of_stock"`
	LowStock      int             `json:"low_stock"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

package store

import (
	"github.com/shopspring/decimal"

	"github.com/salman854/inventory-agents/internal/models"
)

// LowStockThreshold is the exclusive upper bound for the low-stock count.
// A quantity of exactly LowStockThreshold is not low stock; a quantity of
// zero or below counts as out of stock instead.
const LowStockThreshold = 10

// computeStatus derives the aggregate snapshot from a set of records.
// Negative quantities contribute negatively to the total value.
func computeStatus(records map[string]models.Product) models.Status {
	st := models.Status{
		TotalProducts: len(records),
		TotalValue:    decimal.Zero,
	}
	for _, p := range records {
		switch {
		case p.Quantity <= 0:
			st.OutOfStock++
		case p.Quantity < LowStockThreshold:
			st.LowStock++
		}
		st.TotalValue = st.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return st
}

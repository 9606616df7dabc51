// Package store owns the product records and the append-only activity
// log, and persists both to flat JSON files on every mutation.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/salman854/inventory-agents/internal/config"
	"github.com/salman854/inventory-agents/internal/models"
)

// agentName is the agent recorded for direct inventory mutations.
const agentName = "InventoryManager"

// ErrStateReset reports that the persisted state files could not be read
// and the store came up empty. The store is still usable; the caller
// decides how loudly to surface the data loss.
var ErrStateReset = errors.New("state files unreadable, store reset to empty")

// Store is safe for concurrent use. Every successful mutation rewrites
// both backing files before returning.
type Store struct {
	mu     sync.RWMutex
	cfg    config.StoreConfig
	logger *zap.Logger
	now    func() time.Time

	records    map[string]models.Product
	activities []models.Activity
}

// Open loads the store from its backing files. Missing files are not an
// error. Unreadable files reset both collections to empty and return the
// opened store together with ErrStateReset.
func Open(cfg config.StoreConfig, logger *zap.Logger) (*Store, error) {
	s := &Store{
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
		records: make(map[string]models.Product),
	}
	if err := s.load(); err != nil {
		s.records = make(map[string]models.Product)
		s.activities = nil
		return s, fmt.Errorf("%w: %v", ErrStateReset, err)
	}
	return s, nil
}

func (s *Store) load() error {
	if data, err := os.ReadFile(s.cfg.InventoryFile); err == nil {
		if err := json.Unmarshal(data, &s.records); err != nil {
			return fmt.Errorf("parse %s: %w", s.cfg.InventoryFile, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", s.cfg.InventoryFile, err)
	}
	if data, err := os.ReadFile(s.cfg.ActivityLogFile); err == nil {
		if err := json.Unmarshal(data, &s.activities); err != nil {
			return fmt.Errorf("parse %s: %w", s.cfg.ActivityLogFile, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", s.cfg.ActivityLogFile, err)
	}
	return nil
}

// persistLocked rewrites both files. Write failures are logged and the
// in-memory state is kept; durability is best effort.
func (s *Store) persistLocked() {
	if data, err := json.MarshalIndent(s.records, "", "  "); err == nil {
		if err := os.WriteFile(s.cfg.InventoryFile, data, 0o644); err != nil {
			s.logger.Error("failed to save inventory", zap.Error(err))
		}
	} else {
		s.logger.Error("failed to encode inventory", zap.Error(err))
	}
	log := s.activities
	if log == nil {
		log = []models.Activity{}
	}
	if data, err := json.MarshalIndent(log, "", "  "); err == nil {
		if err := os.WriteFile(s.cfg.ActivityLogFile, data, 0o644); err != nil {
			s.logger.Error("failed to save activity log", zap.Error(err))
		}
	} else {
		s.logger.Error("failed to encode activity log", zap.Error(err))
	}
}

func (s *Store) appendActivityLocked(agent string, action models.Action, details string) {
	s.activities = append(s.activities, models.Activity{
		Timestamp: s.now(),
		Agent:     agent,
		Action:    action,
		Details:   details,
	})
	if max := s.cfg.MaxLogEntries; max > 0 && len(s.activities) > max {
		trimmed := make([]models.Activity, max)
		copy(trimmed, s.activities[len(s.activities)-max:])
		s.activities = trimmed
	}
}

// Add inserts a new product. It fails when the ID is already present.
func (s *Store) Add(id, name string, quantity int, price decimal.Decimal, category string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; ok {
		return false
	}
	s.records[id] = models.Product{
		Name:        name,
		Quantity:    quantity,
		Price:       price,
		Category:    category,
		LastUpdated: s.now(),
	}
	s.appendActivityLocked(agentName, models.ActionAddProduct,
		fmt.Sprintf("Added %s (ID: %s), Qty: %d, Price: %s", name, id, quantity, price))
	s.persistLocked()
	return true
}

// UpdateQuantity adjusts a product's quantity by delta. The delta is
// unchecked and may drive the quantity negative.
func (s *Store) UpdateQuantity(id string, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.records[id]
	if !ok {
		return false
	}
	p.Quantity += delta
	p.LastUpdated = s.now()
	s.records[id] = p
	s.appendActivityLocked(agentName, models.ActionUpdateQuantity,
		fmt.Sprintf("Updated %s (ID: %s) by %d. New Qty: %d", p.Name, id, delta, p.Quantity))
	s.persistLocked()
	return true
}

// Sell reduces a product's quantity. It refuses to oversell.
func (s *Store) Sell(id string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.records[id]
	if !ok {
		return false
	}
	if p.Quantity < quantity {
		return false
	}
	p.Quantity -= quantity
	p.LastUpdated = s.now()
	s.records[id] = p
	s.appendActivityLocked(agentName, models.ActionSellProduct,
		fmt.Sprintf("Sold %d of %s (ID: %s). Remaining Qty: %d", quantity, p.Name, id, p.Quantity))
	s.persistLocked()
	return true
}

// Delete removes a product and logs the deletion with its name.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.records[id]
	if !ok {
		return false
	}
	delete(s.records, id)
	s.appendActivityLocked(agentName, models.ActionDeleteProduct,
		fmt.Sprintf("Deleted %s (ID: %s)", p.Name, id))
	s.persistLocked()
	return true
}

// Get returns a product by ID.
func (s *Store) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.records[id]
	return p, ok
}

// Products returns a snapshot copy of all records.
func (s *Store) Products() map[string]models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.Product, len(s.records))
	for id, p := range s.records {
		out[id] = p
	}
	return out
}

// Status computes the aggregate inventory snapshot.
func (s *Store) Status() models.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return computeStatus(s.records)
}

// RecentActivities returns up to limit entries, most recent first.
func (s *Store) RecentActivities(limit int) []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.activities)
	if limit > n {
		limit = n
	}
	if limit < 0 {
		limit = 0
	}
	out := make([]models.Activity, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.activities[i])
	}
	return out
}

// ActivityCount returns the current length of the activity log.
func (s *Store) ActivityCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}

// AppendActivity records an entry on behalf of an agent and persists.
// Notification channels use this to log their send outcomes.
func (s *Store) AppendActivity(agent string, action models.Action, details string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendActivityLocked(agent, action, details)
	s.persistLocked()
}

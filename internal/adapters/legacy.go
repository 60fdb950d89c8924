package adapters

import (
	"sync"

	"equipctl/internal/equipment"
	"equipctl/pkg/logging"
)

// LegacyStore is the interface of the pre-existing inventory implementation.
type LegacyStore interface {
	AddItem(name, kind, status string)
	ListItems() []equipment.Record
}

// LegacyInventory is the old append-only inventory.
type LegacyInventory struct {
	mu    sync.RWMutex
	items []equipment.Record
}

// NewLegacyInventory creates an empty legacy inventory
func NewLegacyInventory() *LegacyInventory {
	return &LegacyInventory{
		items: make([]equipment.Record, 0),
	}
}

// AddItem appends an item to the inventory
func (l *LegacyInventory) AddItem(name, kind, status string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = append(l.items, equipment.NewRecord(name, kind, status))
	logging.Debug("LegacyInventory", "Added item %s (kind: %s, status: %s)", name, kind, status)
}

// ListItems returns a copy of all items in insertion order
func (l *LegacyInventory) ListItems() []equipment.Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]equipment.Record, len(l.items))
	copy(result, l.items)
	return result
}

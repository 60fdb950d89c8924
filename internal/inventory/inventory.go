// Package inventory provides the process-wide equipment inventory.
//
// There is exactly one Inventory per process. It is created on the first call
// to GetInstance and lives until the process exits; every caller gets the same
// instance, so additions made by one caller are visible to all.
package inventory

import (
	"sync"

	"equipctl/internal/equipment"
	"equipctl/pkg/logging"
)

// Inventory is the shared equipment registry. It can only be obtained
// through GetInstance.
type Inventory struct {
	mu        sync.RWMutex
	equipment []equipment.Record
}

func newInventory() *Inventory {
	return &Inventory{
		equipment: make([]equipment.Record, 0),
	}
}

// AddEquipment appends a record
func (i *Inventory) AddEquipment(name, kind, status string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.equipment = append(i.equipment, equipment.NewRecord(name, kind, status))
	logging.Debug("Inventory", "Added equipment %s (kind: %s, status: %s)", name, kind, status)
}

// ListEquipment returns a copy of the records in insertion order
func (i *Inventory) ListEquipment() []equipment.Record {
	i.mu.RLock()
	defer i.mu.RUnlock()

	result := make([]equipment.Record, len(i.equipment))
	copy(result, i.equipment)
	return result
}

// Len returns the number of records
func (i *Inventory) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.equipment)
}

package adapters

import "equipctl/internal/equipment"

// ModernInventory is the interface new code is written against.
type ModernInventory interface {
	AddEquipment(name, kind, status string)
	ListEquipment() []equipment.Record
}

// InventoryAdapter adapts a LegacyStore to the ModernInventory interface
type InventoryAdapter struct {
	legacy LegacyStore
}

var _ ModernInventory = (*InventoryAdapter)(nil)

// NewInventoryAdapter creates a new adapter around the given legacy store
func NewInventoryAdapter(legacy LegacyStore) *InventoryAdapter {
	return &InventoryAdapter{legacy: legacy}
}

// AddEquipment forwards to the legacy AddItem without touching the values
func (a *InventoryAdapter) AddEquipment(name, kind, status string) {
	a.legacy.AddItem(name, kind, status)
}

// ListEquipment returns whatever the legacy ListItems returns
func (a *InventoryAdapter) ListEquipment() []equipment.Record {
	return a.legacy.ListItems()
}

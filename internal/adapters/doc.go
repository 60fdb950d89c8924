// Package adapters lets code written against the modern inventory interface
// operate on the legacy inventory store without modifying it.
//
// # Overview
//
// The legacy store only knows AddItem and ListItems. Newer callers are written
// against ModernInventory, which speaks AddEquipment and ListEquipment. The
// InventoryAdapter sits in between and translates one call into the other.
//
// # Design Pattern
//
// The package follows the classic Adapter design pattern:
//
//	// Target interface (what the client expects)
//	type ModernInventory interface {
//	    AddEquipment(name, kind, status string)
//	    ListEquipment() []equipment.Record
//	}
//
//	// Adaptee (what we have)
//	type LegacyStore interface {
//	    AddItem(name, kind, status string)
//	    ListItems() []equipment.Record
//	}
//
//	// Adapter (bridges the gap)
//	type InventoryAdapter struct {
//	    legacy LegacyStore
//	}
//
// The adapter never creates a legacy store. The caller decides which store to
// wrap and hands it to NewInventoryAdapter.
//
// # Usage
//
//	legacy := adapters.NewLegacyInventory()
//	inv := adapters.NewInventoryAdapter(legacy)
//
//	inv.AddEquipment("Servidor Dell", "Servidor", "disponible")
//	fmt.Println(inv.ListEquipment())
//	// [{name:"Servidor Dell", kind:"Servidor", status:"disponible"}]
//
// # Thread Safety
//
// LegacyInventory is safe for concurrent use and ListItems returns a copy, so
// the slice handed out through the adapter cannot corrupt the store.
package adapters

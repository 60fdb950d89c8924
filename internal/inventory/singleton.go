package inventory

import (
	"sync"

	"equipctl/pkg/logging"
)

var (
	instance     *Inventory
	instanceOnce sync.Once
)

// GetInstance returns the inventory instance, creating it on first use
func GetInstance() *Inventory {
	instanceOnce.Do(func() {
		instance = newInventory()
		logging.Debug("Inventory", "Created inventory instance")
	})
	return instance
}

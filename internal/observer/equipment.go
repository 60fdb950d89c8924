package observer

import (
	"fmt"
	"sync"

	"equipctl/internal/equipment"
	"equipctl/pkg/logging"
)

// Equipment is the observable subject
type Equipment struct {
	name string
	kind string

	mu     sync.RWMutex
	status string

	observers   []Observer
	observersMu sync.RWMutex
}

// NewEquipment creates a subject with its initial status and no observers
func NewEquipment(name, kind, status string) *Equipment {
	return &Equipment{
		name:      name,
		kind:      kind,
		status:    status,
		observers: make([]Observer, 0),
	}
}

// Name returns the equipment name
func (e *Equipment) Name() string {
	return e.name
}

// Kind returns the equipment kind
func (e *Equipment) Kind() string {
	return e.kind
}

// Status returns the current status
func (e *Equipment) Status() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status
}

// Record returns a snapshot of the subject as an equipment record
func (e *Equipment) Record() equipment.Record {
	return equipment.NewRecord(e.name, e.kind, e.Status())
}

// AddObserver subscribes an observer. The same observer may be added twice,
// in which case it is notified twice.
func (e *Equipment) AddObserver(o Observer) {
	e.observersMu.Lock()
	defer e.observersMu.Unlock()
	e.observers = append(e.observers, o)
}

// ChangeStatus sets the status and synchronously notifies every observer in
// registration order
func (e *Equipment) ChangeStatus(newStatus string) {
	e.mu.Lock()
	oldStatus := e.status
	e.status = newStatus
	e.mu.Unlock()

	logging.Debug("Observer", "Equipment %s status changed: %s -> %s", e.name, oldStatus, newStatus)

	e.notifyObservers()
}

// notifyObservers delivers to a snapshot of the observer list, outside the
// lock, so observers may read the subject or subscribe others.
func (e *Equipment) notifyObservers() {
	e.observersMu.RLock()
	observers := make([]Observer, len(e.observers))
	copy(observers, e.observers)
	e.observersMu.RUnlock()

	for i, o := range observers {
		e.deliver(i, o)
	}
}

func (e *Equipment) deliver(index int, o Observer) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("Observer", fmt.Errorf("%v", r), "Observer %d panicked while handling status change of %s", index, e.name)
		}
	}()
	o.Notify(e)
}

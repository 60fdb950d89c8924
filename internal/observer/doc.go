// Package observer implements an equipment subject that broadcasts status
// changes to registered observers.
//
// An Equipment keeps its observers in registration order. ChangeStatus sets
// the new status and then calls Notify on every observer, one after another,
// before it returns. The subject is passed to each observer so it can read
// the current name, kind and status.
//
// Notification is unconditional: setting the status to its current value
// still notifies everyone.
//
// A panic raised by an observer is recovered and logged; the remaining
// observers are still notified.
//
//	laptop := observer.NewEquipment("Notebook HP", "Portátil", "disponible")
//	laptop.AddObserver(observer.NewSupport(os.Stdout))
//	laptop.ChangeStatus("en reparación")
//	// Support notified: equipment "Notebook HP" changed status to "en reparación"
package observer

package observer

// Observer is notified every time a subject changes status
type Observer interface {
	// Notify is called once per status change with the subject itself
	Notify(subject *Equipment)
}

// ObserverFunc lets an ordinary function act as an Observer
type ObserverFunc func(subject *Equipment)

// Notify calls f(subject)
func (f ObserverFunc) Notify(subject *Equipment) {
	f(subject)
}

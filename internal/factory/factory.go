package factory

import (
	"fmt"
	"sort"
	"sync"

	"equipctl/pkg/logging"
)

// Constructor builds one variant from its name, RAM and processor
type Constructor func(name, ram, processor string) Variant

// Factory creates equipment variants from a type tag. Callers never call a
// variant's constructor directly.
type Factory struct {
	mu           sync.RWMutex
	constructors map[Kind]Constructor
}

// NewFactory creates a factory that knows Notebook, Desktop and Server
func NewFactory() *Factory {
	f := &Factory{
		constructors: make(map[Kind]Constructor),
	}

	f.constructors[KindNotebook] = func(name, ram, processor string) Variant {
		return &Notebook{Name: name, RAM: ram, Processor: processor}
	}
	f.constructors[KindDesktop] = func(name, ram, processor string) Variant {
		return &Desktop{Name: name, RAM: ram, Processor: processor}
	}
	f.constructors[KindServer] = func(name, ram, processor string) Variant {
		return &Server{Name: name, RAM: ram, Processor: processor}
	}

	return f
}

// Register adds a variant constructor under kind
func (f *Factory) Register(kind Kind, ctor Constructor) error {
	if kind == "" {
		return ErrEmptyKind
	}
	if ctor == nil {
		return ErrNilConstructor
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.constructors[kind]; exists {
		return fmt.Errorf("%w: %q", ErrKindAlreadyDefined, kind)
	}
	f.constructors[kind] = ctor

	logging.Debug("Factory", "Registered equipment kind %s", kind)
	return nil
}

// CreateEquipment builds the variant registered under kind. The tag must
// match exactly; it is neither trimmed nor case-folded.
func (f *Factory) CreateEquipment(kind, name, ram, processor string) (Variant, error) {
	f.mu.RLock()
	ctor, ok := f.constructors[Kind(kind)]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEquipmentType, kind)
	}

	logging.Debug("Factory", "Creating %s %s", kind, name)
	return ctor(name, ram, processor), nil
}

// Kinds returns the registered kinds, sorted
func (f *Factory) Kinds() []Kind {
	f.mu.RLock()
	defer f.mu.RUnlock()

	kinds := make([]Kind, 0, len(f.constructors))
	for k := range f.constructors {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

var defaultFactory = NewFactory()

// CreateEquipment builds a variant with the default factory
func CreateEquipment(kind, name, ram, processor string) (Variant, error) {
	return defaultFactory.CreateEquipment(kind, name, ram, processor)
}

// Kinds lists the kinds known to the default factory
func Kinds() []Kind {
	return defaultFactory.Kinds()
}

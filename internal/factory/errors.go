package factory

import "errors"

var (
	// ErrInvalidEquipmentType is returned for a type tag with no registered
	// variant. It is an invalid-argument error: retrying will not help.
	ErrInvalidEquipmentType = errors.New("invalid equipment type")

	// Registration errors
	ErrEmptyKind          = errors.New("equipment kind must not be empty")
	ErrNilConstructor     = errors.New("equipment constructor must not be nil")
	ErrKindAlreadyDefined = errors.New("equipment kind already registered")
)

package ecs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRegistered is wrapped by the ConfigError raised when a typed
	// operation names a component type that was never registered.
	ErrNotRegistered = errors.New("component type not registered")

	// ErrDuplicateRegistration is returned by Register when the type already
	// has storage in the world.
	ErrDuplicateRegistration = errors.New("component type registered twice")

	// ErrPoisoned reports that a previous holder of a Shared lock panicked.
	// The world is still returned to the caller, who decides whether to use it.
	ErrPoisoned = errors.New("shared world lock poisoned")
)

// ConfigError is a wiring mistake discovered at runtime: a component type
// used before registration, or registered twice. It is raised with panic by
// the typed operations and is not meant to be recovered outside of startup.
type ConfigError struct {
	Kind string // component type name
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ecs: %s: %v", e.Kind, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// PanicError carries the value recovered from a panic inside Shared.Do.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("ecs: panic while holding world lock: %v", e.Value)
}

func (e *PanicError) Unwrap() error { return ErrPoisoned }

package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Lifecycle errors
	ErrNotInitialized = errors.New("likelihood not initialized")

	// Capability errors
	ErrNotImplemented    = errors.New("not implemented")
	ErrGradientUndefined = fmt.Errorf("%w: gradient", ErrNotImplemented)
	ErrHesseUndefined    = fmt.Errorf("%w: hesse matrix", ErrNotImplemented)

	// Geometry errors
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrEmptySpectrum     = errors.New("empty spectrum")
)

// Error constructors with context

// NewLifecycleError reports an evaluation attempted before Initialize.
func NewLifecycleError(op string) error {
	return fmt.Errorf("%w: run Initialize before %s", ErrNotInitialized, op)
}

// NewDimensionError reports a vector or matrix of the wrong size.
func NewDimensionError(what string, want, got int) error {
	return fmt.Errorf("%w: %s has length %d, want %d", ErrDimensionMismatch, what, got, want)
}

// Error checking helpers

func IsLifecycleError(err error) bool {
	return errors.Is(err, ErrNotInitialized)
}

func IsCapabilityError(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}

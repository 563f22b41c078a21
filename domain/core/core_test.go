package core

import (
	"errors"
	"testing"
)

func TestNewIDUnique(t *testing.T) {
	a := NewID()
	b := NewID()
	if a.IsEmpty() || b.IsEmpty() {
		t.Fatal("NewID returned an empty ID")
	}
	if a == b {
		t.Errorf("NewID returned duplicate IDs: %s", a)
	}
}

func TestLifecycleError(t *testing.T) {
	err := NewLifecycleError("Evaluate")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("lifecycle error does not wrap ErrNotInitialized: %v", err)
	}
	if !IsLifecycleError(err) {
		t.Error("IsLifecycleError = false")
	}
}

func TestCapabilityErrors(t *testing.T) {
	for _, err := range []error{ErrGradientUndefined, ErrHesseUndefined} {
		if !errors.Is(err, ErrNotImplemented) {
			t.Errorf("%v does not wrap ErrNotImplemented", err)
		}
		if !IsCapabilityError(err) {
			t.Errorf("IsCapabilityError(%v) = false", err)
		}
	}
}

func TestDimensionError(t *testing.T) {
	err := NewDimensionError("vec_g", 6, 4)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("dimension error does not wrap ErrDimensionMismatch: %v", err)
	}
}

package errors

import (
	"errors"
	"testing"
)

type randomSourceError struct {
	Msg string
}

func (e randomSourceError) Error() string { return e.Msg }

func TestNew(t *testing.T) {
	err := New("entropy exhausted")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "entropy exhausted" {
		t.Errorf("expected 'entropy exhausted', got '%s'", err.Error())
	}
}

func TestWrap(t *testing.T) {
	baseErr := errors.New("short read")

	t.Run("wrap non-nil error", func(t *testing.T) {
		wrapped := Wrap(baseErr, "read random bytes")
		if wrapped == nil {
			t.Fatal("expected wrapped error, got nil")
		}
		expected := "read random bytes: short read"
		if wrapped.Error() != expected {
			t.Errorf("expected '%s', got '%s'", expected, wrapped.Error())
		}
		if !errors.Is(wrapped, baseErr) {
			t.Error("expected wrapped error to wrap baseErr")
		}
	})

	t.Run("wrap nil error", func(t *testing.T) {
		if wrapped := Wrap(nil, "read random bytes"); wrapped != nil {
			t.Errorf("expected nil, got %v", wrapped)
		}
	})
}

func TestWrapf(t *testing.T) {
	t.Run("wrapf non-nil error", func(t *testing.T) {
		wrapped := Wrapf(ErrInvalidInput, "length %d", -1)
		expected := "length -1: invalid input"
		if wrapped.Error() != expected {
			t.Errorf("expected '%s', got '%s'", expected, wrapped.Error())
		}
		if !Is(wrapped, ErrInvalidInput) {
			t.Error("expected wrapped error to wrap ErrInvalidInput")
		}
	})

	t.Run("wrapf nil error", func(t *testing.T) {
		if wrapped := Wrapf(nil, "length %d", -1); wrapped != nil {
			t.Errorf("expected nil, got %v", wrapped)
		}
	})
}

func TestIs(t *testing.T) {
	if !Is(ErrNotFound, ErrNotFound) {
		t.Error("expected ErrNotFound to be ErrNotFound")
	}

	wrapped := Wrap(ErrNotFound, "index.html")
	if !Is(wrapped, ErrNotFound) {
		t.Error("expected wrapped error to match ErrNotFound")
	}

	if Is(wrapped, ErrInvalidInput) {
		t.Error("expected wrapped ErrNotFound not to match ErrInvalidInput")
	}
}

func TestAs(t *testing.T) {
	err := Wrap(randomSourceError{Msg: "device busy"}, "generate token")

	var target randomSourceError
	if !As(err, &target) {
		t.Fatal("expected As to find randomSourceError")
	}
	if target.Msg != "device busy" {
		t.Errorf("expected 'device busy', got '%s'", target.Msg)
	}
}

package pipeline

import "fmt"

// Reason explains why an Optional holds no value.
type Reason uint8

const (
	// ReasonNone marks a present value.
	ReasonNone Reason = iota
	// ReasonEmpty means the sequence had no elements.
	ReasonEmpty
	// ReasonAmbiguous means more than one element qualified.
	ReasonAmbiguous
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonEmpty:
		return "empty"
	case ReasonAmbiguous:
		return "ambiguous"
	default:
		return fmt.Sprintf("Reason(%d)", uint8(r))
	}
}

// Optional is a value that may be absent, carrying the reason when it is.
type Optional[T any] struct {
	value   T
	present bool
	reason  Reason
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional with the given reason.
func None[T any](reason Reason) Optional[T] {
	return Optional[T]{reason: reason}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.present }

// Present reports whether a value is held.
func (o Optional[T]) Present() bool { return o.present }

// Reason reports why the value is absent, or ReasonNone.
func (o Optional[T]) Reason() Reason { return o.reason }

// OrElse returns the value if present, else fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// MustGet returns the value, panicking if it is absent.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic(fmt.Sprintf("pipeline: Optional.MustGet on absent value (%s)", o.reason))
	}
	return o.value
}

func (o Optional[T]) String() string {
	if !o.present {
		return fmt.Sprintf("None(%s)", o.reason)
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Binding maps the outcome of an optional-returning operator into the
// caller's own wrapper type O.
type Binding[T, O any] interface {
	Absent(reason Reason) O
	Present(v T) O
}

// OptionalBinding is the default binding, producing Optional[T].
type OptionalBinding[T any] struct{}

func (OptionalBinding[T]) Absent(reason Reason) Optional[T] { return None[T](reason) }
func (OptionalBinding[T]) Present(v T) Optional[T]          { return Some(v) }

// PointerBinding produces *T, nil when absent.
type PointerBinding[T any] struct{}

func (PointerBinding[T]) Absent(Reason) *T { return nil }
func (PointerBinding[T]) Present(v T) *T   { return &v }

// rebind converts an Optional through b.
func rebind[T, O any](o Optional[T], b Binding[T, O]) O {
	if v, ok := o.Get(); ok {
		return b.Present(v)
	}
	return b.Absent(o.Reason())
}

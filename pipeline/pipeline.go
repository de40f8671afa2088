package pipeline

import (
	"iter"

	"github.com/kbukum/seqkit/size"
)

// Enumerator provides pull-based sequential access to a sequence.
type Enumerator[T any] interface {
	// Next advances to the next element and reports whether there is one.
	Next() bool
	// Current returns the element Next advanced to.
	Current() T
	// Measure describes the elements not yet returned by Next.
	Measure() size.Info
	// Close releases upstream state. The enumerator must not be used after.
	Close()
}

// Enumerable is anything that can produce a fresh Enumerator.
type Enumerable[T any] interface {
	Enumerate() Enumerator[T]
}

// Pipeline represents a lazy, pull-based sequence.
// No work happens until a terminal operator enumerates it.
type Pipeline[T any] struct {
	create func() Enumerator[T]
	pure   bool
	// upstream reports the purity of the pipelines this one reads from.
	// It is consulted on every IsPure call, so a referenced upstream that
	// is replaced after chaining is seen.
	upstream func() bool
}

// New creates a pure pipeline from an enumerator factory.
func New[T any](create func() Enumerator[T]) *Pipeline[T] {
	return &Pipeline[T]{create: create, pure: true}
}

// Enumerate returns a fresh enumerator. The zero Pipeline is empty.
func (p *Pipeline[T]) Enumerate() Enumerator[T] {
	if p.create == nil {
		return &emptyEnum[T]{}
	}
	return p.create()
}

// IsPure reports whether traversing p has no side effects beyond yielding values.
func (p *Pipeline[T]) IsPure() bool {
	return p.pure && (p.upstream == nil || p.upstream())
}

// Impure returns a copy of p marked as having side effects.
func (p *Pipeline[T]) Impure() *Pipeline[T] {
	return &Pipeline[T]{create: p.create, pure: false}
}

// Measure reports what is known about p's length without iterating it.
func (p *Pipeline[T]) Measure() size.Info {
	e := p.Enumerate()
	defer e.Close()
	return e.Measure()
}

// Seq adapts p to a range-over-func iterator. Each range starts a fresh traversal.
func (p *Pipeline[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		e := p.Enumerate()
		defer e.Close()
		for e.Next() {
			if !yield(e.Current()) {
				return
			}
		}
	}
}

// purity is implemented by enumerables that report side effects.
type purity interface {
	IsPure() bool
}

// Of normalizes any enumerable into a Pipeline. Pipelines pass through;
// other enumerables are pure only if they report so through IsPure.
func Of[T any](src Enumerable[T]) *Pipeline[T] {
	if p, ok := src.(*Pipeline[T]); ok {
		return p
	}
	pure := false
	if r, ok := src.(purity); ok {
		pure = r.IsPure()
	}
	return &Pipeline[T]{create: src.Enumerate, pure: pure}
}

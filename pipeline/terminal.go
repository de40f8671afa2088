package pipeline

import (
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/size"
)

// mustBeFinite panics when e provably never ends, since op would not return.
func mustBeFinite[T any](e Enumerator[T], op string) {
	if e.Measure().Kind == size.Unbounded {
		panic(errors.Unbounded(op))
	}
}

// First returns the first element of p.
func First[T any](p *Pipeline[T]) (T, error) {
	o := FirstIfAny(p)
	if v, ok := o.Get(); ok {
		return v, nil
	}
	var zero T
	return zero, errors.Empty("First")
}

// Single returns the only element of p.
func Single[T any](p *Pipeline[T]) (T, error) {
	o := SingleIfAny(p)
	if v, ok := o.Get(); ok {
		return v, nil
	}
	var zero T
	if o.Reason() == ReasonAmbiguous {
		return zero, errors.Ambiguous("Single")
	}
	return zero, errors.Empty("Single")
}

// Last returns the final element of p. The whole sequence is traversed.
func Last[T any](p *Pipeline[T]) (T, error) {
	o := LastIfAny(p)
	if v, ok := o.Get(); ok {
		return v, nil
	}
	var zero T
	return zero, errors.Empty("Last")
}

// FirstIfAny returns the first element of p, if any.
func FirstIfAny[T any](p *Pipeline[T]) Optional[T] {
	e := p.Enumerate()
	defer e.Close()
	if !e.Next() {
		return None[T](ReasonEmpty)
	}
	return Some(e.Current())
}

// LastIfAny returns the final element of p, if any.
func LastIfAny[T any](p *Pipeline[T]) Optional[T] {
	e := p.Enumerate()
	defer e.Close()
	mustBeFinite(e, "Last")
	if !e.Next() {
		return None[T](ReasonEmpty)
	}
	last := e.Current()
	for e.Next() {
		last = e.Current()
	}
	return Some(last)
}

// SingleIfAny returns the only element of p. It is absent with
// ReasonEmpty for no elements and ReasonAmbiguous for more than one.
// At most two elements are pulled.
func SingleIfAny[T any](p *Pipeline[T]) Optional[T] {
	e := p.Enumerate()
	defer e.Close()
	return single(e)
}

// SingleOrNone is SingleIfAny that first decides from the measure,
// pulling nothing when the size already proves the outcome.
func SingleOrNone[T any](p *Pipeline[T]) Optional[T] {
	e := p.Enumerate()
	defer e.Close()
	m := e.Measure()
	switch {
	case m.IsEmpty():
		return None[T](ReasonEmpty)
	case m.Kind == size.Unbounded, m.Kind == size.Exact && m.Value > 1:
		return None[T](ReasonAmbiguous)
	}
	return single(e)
}

func single[T any](e Enumerator[T]) Optional[T] {
	if !e.Next() {
		return None[T](ReasonEmpty)
	}
	v := e.Current()
	if e.Next() {
		return None[T](ReasonAmbiguous)
	}
	return Some(v)
}

// FirstIfAnyWith is FirstIfAny reported through b.
func FirstIfAnyWith[T, O any](p *Pipeline[T], b Binding[T, O]) O {
	return rebind(FirstIfAny(p), b)
}

// LastIfAnyWith is LastIfAny reported through b.
func LastIfAnyWith[T, O any](p *Pipeline[T], b Binding[T, O]) O {
	return rebind(LastIfAny(p), b)
}

// SingleIfAnyWith is SingleIfAny reported through b.
func SingleIfAnyWith[T, O any](p *Pipeline[T], b Binding[T, O]) O {
	return rebind(SingleIfAny(p), b)
}

// SingleOrNoneWith is SingleOrNone reported through b.
func SingleOrNoneWith[T, O any](p *Pipeline[T], b Binding[T, O]) O {
	return rebind(SingleOrNone(p), b)
}

// Count returns the number of elements in p. An exact measure is returned
// without iterating.
func Count[T any](p *Pipeline[T]) int {
	e := p.Enumerate()
	defer e.Close()
	m := e.Measure()
	switch m.Kind {
	case size.Exact:
		return m.Value
	case size.Unbounded:
		panic(errors.Unbounded("Count"))
	}
	n := 0
	for e.Next() {
		n++
	}
	return n
}

// Any reports whether p has at least one element. The measure is consulted
// first; otherwise exactly one element is pulled.
func Any[T any](p *Pipeline[T]) bool {
	e := p.Enumerate()
	defer e.Close()
	m := e.Measure()
	switch {
	case m.IsEmpty():
		return false
	case m.IsNonEmpty():
		return true
	}
	return e.Next()
}

// AnyMatch reports whether some element satisfies pred, stopping at the first.
func AnyMatch[T any](p *Pipeline[T], pred func(T) bool) bool {
	e := p.Enumerate()
	defer e.Close()
	for e.Next() {
		if pred(e.Current()) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies pred, stopping at the first
// that does not. An empty pipeline satisfies All.
func All[T any](p *Pipeline[T], pred func(T) bool) bool {
	e := p.Enumerate()
	defer e.Close()
	for e.Next() {
		if !pred(e.Current()) {
			return false
		}
	}
	return true
}

// AllEqual reports whether every element equals the first.
func AllEqual[T comparable](p *Pipeline[T]) bool {
	return AllEqualFunc(p, func(a, b T) bool { return a == b })
}

// AllEqualFunc reports whether every element is eq to the first.
// Zero or one elements are trivially equal.
func AllEqualFunc[T any](p *Pipeline[T], eq func(a, b T) bool) bool {
	e := p.Enumerate()
	defer e.Close()
	if !e.Next() {
		return true
	}
	first := e.Current()
	for e.Next() {
		if !eq(first, e.Current()) {
			return false
		}
	}
	return true
}

// AreEqual reports whether a and b yield equal elements in the same order.
func AreEqual[T comparable](a *Pipeline[T], b Enumerable[T]) bool {
	return AreEqualFunc(a, b, func(x, y T) bool { return x == y })
}

// AreEqualFunc reports whether a and b yield eq elements pairwise and end
// together. Sizes that provably differ answer false without pulling.
func AreEqualFunc[T any](a *Pipeline[T], b Enumerable[T], eq func(x, y T) bool) bool {
	left := a.Enumerate()
	defer left.Close()
	right := b.Enumerate()
	defer right.Close()
	if left.Measure().ProvesDifferent(right.Measure()) {
		return false
	}
	for {
		ln, rn := left.Next(), right.Next()
		if ln != rn {
			return false
		}
		if !ln {
			return true
		}
		if !eq(left.Current(), right.Current()) {
			return false
		}
	}
}

// Reduce folds p into a single value starting from init.
func Reduce[T, A any](p *Pipeline[T], init A, fn func(acc A, v T) A) A {
	e := p.Enumerate()
	defer e.Close()
	acc := init
	for e.Next() {
		acc = fn(acc, e.Current())
	}
	return acc
}

// ForEach calls fn for every element of p.
func ForEach[T any](p *Pipeline[T], fn func(T)) {
	e := p.Enumerate()
	defer e.Close()
	for e.Next() {
		fn(e.Current())
	}
}

package pipeline

import (
	"github.com/kbukum/seqkit/numeric"
	"github.com/kbukum/seqkit/size"
)

// Map transforms each value using fn.
func Map[I, O any](p *Pipeline[I], fn func(I) O) *Pipeline[O] {
	return Chain(p, func(up Enumerator[I]) Enumerator[O] {
		return &mapEnum[I, O]{source: up, fn: fn}
	})
}

// Filter keeps only values that satisfy the predicate. Pass Terminable when
// the predicate is known to keep matching on an infinite source.
func Filter[T any](p *Pipeline[T], fn func(T) bool, opts ...Option) *Pipeline[T] {
	terminable := applyOptions(opts).terminable
	return Chain(p, func(up Enumerator[T]) Enumerator[T] {
		return &filterEnum[T]{source: up, fn: fn, terminable: terminable}
	}, opts...)
}

// TakeWhile yields values until the predicate first fails.
func TakeWhile[T any](p *Pipeline[T], fn func(T) bool) *Pipeline[T] {
	return Chain(p, func(up Enumerator[T]) Enumerator[T] {
		return &takeWhileEnum[T]{source: up, fn: fn}
	})
}

// SkipWhile drops values until the predicate first fails, then yields the rest.
func SkipWhile[T any](p *Pipeline[T], fn func(T) bool) *Pipeline[T] {
	return Chain(p, func(up Enumerator[T]) Enumerator[T] {
		return &skipWhileEnum[T]{source: up, fn: fn, skipping: true}
	})
}

// Take yields at most n values.
func Take[T any](p *Pipeline[T], n int) *Pipeline[T] {
	return Chain(p, func(up Enumerator[T]) Enumerator[T] {
		return &takeEnum[T]{source: up, left: max(n, 0)}
	})
}

// Skip drops the first n values.
func Skip[T any](p *Pipeline[T], n int) *Pipeline[T] {
	return Chain(p, func(up Enumerator[T]) Enumerator[T] {
		return &skipEnum[T]{source: up, left: max(n, 0)}
	})
}

// Tap calls fn for each value as it passes through. The result is impure.
func Tap[T any](p *Pipeline[T], fn func(T)) *Pipeline[T] {
	return Chain(p, func(up Enumerator[T]) Enumerator[T] {
		return &tapEnum[T]{source: up, fn: fn}
	}, WithSideEffects())
}

// Deref turns a pipeline of borrowed elements into one of owned copies.
func Deref[T any](p *Pipeline[*T]) *Pipeline[T] {
	return Map(p, func(v *T) T { return *v })
}

// Convert changes the element type of a numeric pipeline with a Go conversion.
// It is how sources of different numeric types are unified before Concat.
func Convert[To, From numeric.Number](p *Pipeline[From]) *Pipeline[To] {
	return Map(p, func(v From) To { return To(v) })
}

// FlatMap maps each value to a sequence and yields the elements of each in turn.
func FlatMap[I, O any](p *Pipeline[I], fn func(I) Enumerable[O]) *Pipeline[O] {
	return Chain(p, func(up Enumerator[I]) Enumerator[O] {
		return &flatMapEnum[I, O]{source: up, fn: fn}
	})
}

// --- Enumerator implementations ---

// mapEnum applies fn at most once per element, on the first Current.
type mapEnum[I, O any] struct {
	source Enumerator[I]
	fn     func(I) O
	value  O
	mapped bool
}

func (it *mapEnum[I, O]) Next() bool {
	it.mapped = false
	return it.source.Next()
}

func (it *mapEnum[I, O]) Current() O {
	if !it.mapped {
		it.value = it.fn(it.source.Current())
		it.mapped = true
	}
	return it.value
}

func (it *mapEnum[I, O]) Measure() size.Info { return it.source.Measure() }
func (it *mapEnum[I, O]) Close()             { it.source.Close() }

type filterEnum[T any] struct {
	source     Enumerator[T]
	fn         func(T) bool
	terminable bool
}

func (it *filterEnum[T]) Next() bool {
	for it.source.Next() {
		if it.fn(it.source.Current()) {
			return true
		}
	}
	return false
}

func (it *filterEnum[T]) Current() T { return it.source.Current() }

func (it *filterEnum[T]) Measure() size.Info {
	return it.source.Measure().Filtered(it.terminable)
}

func (it *filterEnum[T]) Close() { it.source.Close() }

type takeWhileEnum[T any] struct {
	source Enumerator[T]
	fn     func(T) bool
	done   bool
}

func (it *takeWhileEnum[T]) Next() bool {
	if it.done {
		return false
	}
	if !it.source.Next() || !it.fn(it.source.Current()) {
		it.done = true
		return false
	}
	return true
}

func (it *takeWhileEnum[T]) Current() T { return it.source.Current() }

func (it *takeWhileEnum[T]) Measure() size.Info {
	if it.done {
		return size.ExactOf(0)
	}
	return it.source.Measure().Filtered(false)
}

func (it *takeWhileEnum[T]) Close() { it.source.Close() }

type skipWhileEnum[T any] struct {
	source   Enumerator[T]
	fn       func(T) bool
	skipping bool
}

func (it *skipWhileEnum[T]) Next() bool {
	if !it.skipping {
		return it.source.Next()
	}
	for it.source.Next() {
		if !it.fn(it.source.Current()) {
			it.skipping = false
			return true
		}
	}
	it.skipping = false
	return false
}

func (it *skipWhileEnum[T]) Current() T { return it.source.Current() }

func (it *skipWhileEnum[T]) Measure() size.Info {
	if it.skipping {
		return it.source.Measure().Filtered(false)
	}
	return it.source.Measure()
}

func (it *skipWhileEnum[T]) Close() { it.source.Close() }

type takeEnum[T any] struct {
	source Enumerator[T]
	left   int
}

func (it *takeEnum[T]) Next() bool {
	if it.left == 0 || !it.source.Next() {
		it.left = 0
		return false
	}
	it.left--
	return true
}

func (it *takeEnum[T]) Current() T { return it.source.Current() }

func (it *takeEnum[T]) Measure() size.Info {
	if it.left == 0 {
		return size.ExactOf(0)
	}
	return it.source.Measure().LimitTo(it.left)
}

func (it *takeEnum[T]) Close() { it.source.Close() }

type skipEnum[T any] struct {
	source Enumerator[T]
	left   int
}

func (it *skipEnum[T]) Next() bool {
	for it.left > 0 {
		if !it.source.Next() {
			it.left = 0
			return false
		}
		it.left--
	}
	return it.source.Next()
}

func (it *skipEnum[T]) Current() T { return it.source.Current() }

func (it *skipEnum[T]) Measure() size.Info {
	return it.source.Measure().Subtract(it.left)
}

func (it *skipEnum[T]) Close() { it.source.Close() }

type tapEnum[T any] struct {
	source Enumerator[T]
	fn     func(T)
}

func (it *tapEnum[T]) Next() bool {
	if !it.source.Next() {
		return false
	}
	it.fn(it.source.Current())
	return true
}

func (it *tapEnum[T]) Current() T         { return it.source.Current() }
func (it *tapEnum[T]) Measure() size.Info { return it.source.Measure() }
func (it *tapEnum[T]) Close()             { it.source.Close() }

type flatMapEnum[I, O any] struct {
	source  Enumerator[I]
	fn      func(I) Enumerable[O]
	current Enumerator[O]
}

func (it *flatMapEnum[I, O]) Next() bool {
	for {
		if it.current != nil {
			if it.current.Next() {
				return true
			}
			it.current.Close()
			it.current = nil
		}
		if !it.source.Next() {
			return false
		}
		it.current = it.fn(it.source.Current()).Enumerate()
	}
}

func (it *flatMapEnum[I, O]) Current() O { return it.current.Current() }

func (it *flatMapEnum[I, O]) Measure() size.Info {
	rest := it.source.Measure()
	if !rest.IsEmpty() {
		return size.Unknowable()
	}
	if it.current == nil {
		return size.ExactOf(0)
	}
	return it.current.Measure()
}

func (it *flatMapEnum[I, O]) Close() {
	if it.current != nil {
		it.current.Close()
	}
	it.source.Close()
}

package pipeline

import (
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/size"
)

// Concat joins sequences end to end. It is a left fold of two-input concat
// stages, so Concat(a, b, c) and Concat(Concat(a, b), c) build the same
// shape and yield the same element type. Sources of different numeric
// types are unified with Convert first.
func Concat[T any](first Enumerable[T], rest ...Enumerable[T]) *Pipeline[T] {
	acc := Of(first)
	for _, next := range rest {
		acc = ChainJoined(acc, next, concatStage[T])
	}
	return acc
}

func concatStage[T any](left, right Enumerator[T]) Enumerator[T] {
	return &concatEnum[T]{left: left, right: right}
}

// Pair holds one element from each side of a Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs up elements of p and other, stopping when either runs out.
func Zip[A, B any](p *Pipeline[A], other Enumerable[B]) *Pipeline[Pair[A, B]] {
	return ChainJoined(p, other, func(left Enumerator[A], right Enumerator[B]) Enumerator[Pair[A, B]] {
		return &zipEnum[A, B]{left: left, right: right}
	})
}

// Distinct yields each value the first time it appears.
func Distinct[T comparable](p *Pipeline[T]) *Pipeline[T] {
	return Chain(p, func(up Enumerator[T]) Enumerator[T] {
		return &distinctEnum[T]{source: up, seen: make(map[T]struct{})}
	})
}

// Union yields the distinct values of p followed by the distinct values of
// other not already seen.
func Union[T comparable](p *Pipeline[T], other Enumerable[T]) *Pipeline[T] {
	return Distinct(Concat[T](p, other))
}

// Intersect yields the distinct values of p that also occur in other.
// other is read completely on the first Next and must be finite.
func Intersect[T comparable](p *Pipeline[T], other Enumerable[T]) *Pipeline[T] {
	return ChainJoined(p, other, func(left, right Enumerator[T]) Enumerator[T] {
		return &setEnum[T]{source: left, other: right, keep: true}
	})
}

// Except yields the distinct values of p that do not occur in other.
// other is read completely on the first Next and must be finite.
func Except[T comparable](p *Pipeline[T], other Enumerable[T]) *Pipeline[T] {
	return ChainJoined(p, other, func(left, right Enumerator[T]) Enumerator[T] {
		return &setEnum[T]{source: left, other: right, keep: false}
	})
}

// --- Enumerator implementations ---

type concatEnum[T any] struct {
	left, right Enumerator[T]
	onRight     bool
}

func (it *concatEnum[T]) Next() bool {
	if !it.onRight {
		if it.left.Next() {
			return true
		}
		it.onRight = true
	}
	return it.right.Next()
}

func (it *concatEnum[T]) Current() T {
	if it.onRight {
		return it.right.Current()
	}
	return it.left.Current()
}

func (it *concatEnum[T]) Measure() size.Info {
	if it.onRight {
		return it.right.Measure()
	}
	return it.left.Measure().Add(it.right.Measure())
}

func (it *concatEnum[T]) Close() {
	it.left.Close()
	it.right.Close()
}

type zipEnum[A, B any] struct {
	left  Enumerator[A]
	right Enumerator[B]
	done  bool
}

func (it *zipEnum[A, B]) Next() bool {
	if it.done || !it.left.Next() || !it.right.Next() {
		it.done = true
		return false
	}
	return true
}

func (it *zipEnum[A, B]) Current() Pair[A, B] {
	return Pair[A, B]{First: it.left.Current(), Second: it.right.Current()}
}

func (it *zipEnum[A, B]) Measure() size.Info {
	if it.done {
		return size.ExactOf(0)
	}
	return it.left.Measure().Limit(it.right.Measure())
}

func (it *zipEnum[A, B]) Close() {
	it.left.Close()
	it.right.Close()
}

type distinctEnum[T comparable] struct {
	source Enumerator[T]
	seen   map[T]struct{}
}

func (it *distinctEnum[T]) Next() bool {
	for it.source.Next() {
		v := it.source.Current()
		if _, dup := it.seen[v]; !dup {
			it.seen[v] = struct{}{}
			return true
		}
	}
	return false
}

func (it *distinctEnum[T]) Current() T { return it.source.Current() }

func (it *distinctEnum[T]) Measure() size.Info {
	return it.source.Measure().Filtered(false)
}

func (it *distinctEnum[T]) Close() { it.source.Close() }

// setEnum filters source by membership in other. Yielded values are removed
// from the lookup set (keep) or added to it (!keep) so each appears once.
type setEnum[T comparable] struct {
	source Enumerator[T]
	other  Enumerator[T]
	keep   bool
	lookup map[T]struct{}
}

func (it *setEnum[T]) load() {
	if it.lookup != nil {
		return
	}
	if it.other.Measure().Kind == size.Unbounded {
		panic(errors.Unbounded("set operation"))
	}
	it.lookup = make(map[T]struct{})
	for it.other.Next() {
		it.lookup[it.other.Current()] = struct{}{}
	}
}

func (it *setEnum[T]) Next() bool {
	it.load()
	for it.source.Next() {
		v := it.source.Current()
		_, found := it.lookup[v]
		if found == it.keep {
			if it.keep {
				delete(it.lookup, v)
			} else {
				it.lookup[v] = struct{}{}
			}
			return true
		}
	}
	return false
}

func (it *setEnum[T]) Current() T { return it.source.Current() }

func (it *setEnum[T]) Measure() size.Info {
	m := it.source.Measure().Filtered(false)
	if !it.keep {
		return m
	}
	if it.lookup != nil {
		return m.Limit(size.AtMost(len(it.lookup)))
	}
	if other := it.other.Measure(); other.HasValue() {
		return m.Limit(size.AtMost(other.Value))
	}
	return m
}

func (it *setEnum[T]) Close() {
	it.source.Close()
	it.other.Close()
}

package pipeline

import "github.com/kbukum/seqkit/size"

// Window yields overlapping windows of n consecutive elements, advancing by
// one. A sequence shorter than n yields no windows. Each window is a new
// slice.
//
// Window panics if n is not positive.
func Window[T any](p *Pipeline[T], n int) *Pipeline[[]T] {
	if n <= 0 {
		panic("pipeline.Window: n must be positive")
	}
	return Chain(p, func(up Enumerator[T]) Enumerator[[]T] {
		return &windowEnum[T]{source: up, size: n}
	})
}

type windowEnum[T any] struct {
	source  Enumerator[T]
	size    int
	current []T
	started bool
}

func (it *windowEnum[T]) Next() bool {
	if !it.started {
		it.started = true
		buf := make([]T, 0, it.size)
		for len(buf) < it.size && it.source.Next() {
			buf = append(buf, it.source.Current())
		}
		if len(buf) < it.size {
			it.current = nil
			return false
		}
		it.current = buf
		return true
	}
	if it.current == nil || !it.source.Next() {
		it.current = nil
		return false
	}
	next := make([]T, it.size)
	copy(next, it.current[1:])
	next[it.size-1] = it.source.Current()
	it.current = next
	return true
}

func (it *windowEnum[T]) Current() []T { return it.current }

func (it *windowEnum[T]) Measure() size.Info {
	m := it.source.Measure()
	if it.started {
		if it.current == nil {
			return size.ExactOf(0)
		}
		return m
	}
	return m.Subtract(it.size - 1)
}

func (it *windowEnum[T]) Close() { it.source.Close() }

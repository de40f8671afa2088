package pipeline

import (
	"slices"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/size"
)

// Sort yields the values of p ordered by cmp. The upstream is read and
// sorted on the first Next, not before: Measure, and with it Count and Any,
// answer from the upstream measure without sorting.
func Sort[T any](p *Pipeline[T], cmp func(a, b T) int) *Pipeline[T] {
	return Chain(p, func(up Enumerator[T]) Enumerator[T] {
		return &sortEnum[T]{source: up, cmp: cmp, index: -1}
	})
}

// SortStable is Sort keeping equal elements in their original order.
func SortStable[T any](p *Pipeline[T], cmp func(a, b T) int) *Pipeline[T] {
	return Chain(p, func(up Enumerator[T]) Enumerator[T] {
		return &sortEnum[T]{source: up, cmp: cmp, index: -1, stable: true}
	})
}

type sortEnum[T any] struct {
	source Enumerator[T]
	cmp    func(a, b T) int
	stable bool
	sorted []T
	loaded bool
	index  int
}

func (it *sortEnum[T]) load() {
	if it.loaded {
		return
	}
	it.loaded = true
	if it.source.Measure().Kind == size.Unbounded {
		panic(errors.Unbounded("Sort"))
	}
	for it.source.Next() {
		it.sorted = append(it.sorted, it.source.Current())
	}
	if it.stable {
		slices.SortStableFunc(it.sorted, it.cmp)
	} else {
		slices.SortFunc(it.sorted, it.cmp)
	}
}

func (it *sortEnum[T]) Next() bool {
	it.load()
	if it.index+1 >= len(it.sorted) {
		it.index = len(it.sorted)
		return false
	}
	it.index++
	return true
}

func (it *sortEnum[T]) Current() T { return it.sorted[it.index] }

func (it *sortEnum[T]) Measure() size.Info {
	if !it.loaded {
		return it.source.Measure()
	}
	return size.ExactOf(len(it.sorted) - it.index - 1)
}

func (it *sortEnum[T]) Close() { it.source.Close() }

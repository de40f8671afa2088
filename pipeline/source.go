package pipeline

import (
	"iter"

	"github.com/kbukum/seqkit/size"
)

// Empty creates a pipeline that yields nothing.
func Empty[T any]() *Pipeline[T] {
	return New(func() Enumerator[T] { return &emptyEnum[T]{} })
}

// FromSlice creates a pipeline yielding copies of the slice's elements.
// The slice is read at traversal time.
func FromSlice[T any](items []T) *Pipeline[T] {
	return New(func() Enumerator[T] {
		return &sliceEnum[T]{items: items, index: -1}
	})
}

// FromSliceRef creates a pipeline yielding pointers into the slice.
// Elements are borrowed: they alias the slice's backing array.
func FromSliceRef[T any](items []T) *Pipeline[*T] {
	return New(func() Enumerator[*T] {
		return &sliceRefEnum[T]{items: items, index: -1}
	})
}

// FromSeq creates a pipeline over a range-over-func iterator. hint is the
// caller's claim about the sequence length; pass size.Unknowable() when
// nothing is known. The iterator is assumed free of side effects.
func FromSeq[T any](seq iter.Seq[T], hint size.Info) *Pipeline[T] {
	return New(func() Enumerator[T] {
		return &seqEnum[T]{seq: seq, hint: hint}
	})
}

// FromChan creates a pipeline that receives from ch until it is closed.
// Receiving consumes values, so the pipeline is impure.
func FromChan[T any](ch <-chan T) *Pipeline[T] {
	return &Pipeline[T]{
		create: func() Enumerator[T] { return &chanEnum[T]{ch: ch} },
	}
}

// FromEnumerator wraps an existing enumerator. The enumerator can only be
// walked once, so the pipeline is impure and later traversals see whatever
// the earlier ones left behind.
func FromEnumerator[T any](e Enumerator[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func() Enumerator[T] { return e },
	}
}

// Range creates a pipeline of integers from start towards end (exclusive)
// by step. A zero step yields nothing.
func Range(start, end, step int) *Pipeline[int] {
	return New(func() Enumerator[int] {
		return &rangeEnum{next: start, end: end, step: step}
	})
}

// Repeat creates a pipeline yielding v count times.
func Repeat[T any](v T, count int) *Pipeline[T] {
	return New(func() Enumerator[T] {
		return &repeatEnum[T]{value: v, left: max(count, 0)}
	})
}

// RepeatForever creates a pipeline yielding v without end.
func RepeatForever[T any](v T) *Pipeline[T] {
	return New(func() Enumerator[T] {
		return &repeatEnum[T]{value: v, left: -1}
	})
}

// Generate creates an unbounded pipeline yielding fn(0), fn(1), ...
// fn must depend only on its argument for the pipeline to be pure.
func Generate[T any](fn func(i int) T) *Pipeline[T] {
	return New(func() Enumerator[T] {
		return &generateEnum[T]{fn: fn, index: -1}
	})
}

// --- Source enumerators ---

type emptyEnum[T any] struct{}

func (emptyEnum[T]) Next() bool { return false }

func (emptyEnum[T]) Current() T {
	var zero T
	return zero
}

func (emptyEnum[T]) Measure() size.Info { return size.ExactOf(0) }

func (emptyEnum[T]) Close() {}

type sliceEnum[T any] struct {
	items []T
	index int
}

func (it *sliceEnum[T]) Next() bool {
	if it.index+1 >= len(it.items) {
		it.index = len(it.items)
		return false
	}
	it.index++
	return true
}

func (it *sliceEnum[T]) Current() T { return it.items[it.index] }

func (it *sliceEnum[T]) Measure() size.Info {
	return size.ExactOf(len(it.items) - it.index - 1)
}

func (it *sliceEnum[T]) Close() {}

type sliceRefEnum[T any] struct {
	items []T
	index int
}

func (it *sliceRefEnum[T]) Next() bool {
	if it.index+1 >= len(it.items) {
		it.index = len(it.items)
		return false
	}
	it.index++
	return true
}

func (it *sliceRefEnum[T]) Current() *T { return &it.items[it.index] }

func (it *sliceRefEnum[T]) Measure() size.Info {
	return size.ExactOf(len(it.items) - it.index - 1)
}

func (it *sliceRefEnum[T]) Close() {}

// seqEnum pulls from an iter.Seq. The pull coroutine starts on first Next.
type seqEnum[T any] struct {
	seq     iter.Seq[T]
	hint    size.Info
	next    func() (T, bool)
	stop    func()
	current T
	done    bool
}

func (it *seqEnum[T]) Next() bool {
	if it.done {
		return false
	}
	if it.next == nil {
		it.next, it.stop = iter.Pull(it.seq)
	}
	v, ok := it.next()
	if !ok {
		it.done = true
		it.Close()
		return false
	}
	it.current = v
	it.hint = it.hint.Subtract(1)
	return true
}

func (it *seqEnum[T]) Current() T { return it.current }

func (it *seqEnum[T]) Measure() size.Info {
	if it.done {
		return size.ExactOf(0)
	}
	return it.hint
}

func (it *seqEnum[T]) Close() {
	if it.stop != nil {
		it.stop()
		it.stop = nil
	}
}

type chanEnum[T any] struct {
	ch      <-chan T
	current T
	done    bool
}

func (it *chanEnum[T]) Next() bool {
	if it.done {
		return false
	}
	v, ok := <-it.ch
	if !ok {
		it.done = true
		return false
	}
	it.current = v
	return true
}

func (it *chanEnum[T]) Current() T { return it.current }

func (it *chanEnum[T]) Measure() size.Info {
	if it.done {
		return size.ExactOf(0)
	}
	return size.Unknowable()
}

func (it *chanEnum[T]) Close() {}

type rangeEnum struct {
	next, end, step int
	current         int
}

func (it *rangeEnum) Next() bool {
	if it.remaining() == 0 {
		return false
	}
	it.current = it.next
	it.next += it.step
	return true
}

func (it *rangeEnum) Current() int { return it.current }

func (it *rangeEnum) Measure() size.Info { return size.ExactOf(it.remaining()) }

func (it *rangeEnum) remaining() int {
	switch {
	case it.step > 0 && it.next < it.end:
		return (it.end - it.next + it.step - 1) / it.step
	case it.step < 0 && it.next > it.end:
		return (it.next - it.end - it.step - 1) / -it.step
	}
	return 0
}

func (it *rangeEnum) Close() {}

// repeatEnum yields value left times; a negative left repeats forever.
type repeatEnum[T any] struct {
	value T
	left  int
}

func (it *repeatEnum[T]) Next() bool {
	if it.left == 0 {
		return false
	}
	if it.left > 0 {
		it.left--
	}
	return true
}

func (it *repeatEnum[T]) Current() T { return it.value }

func (it *repeatEnum[T]) Measure() size.Info {
	if it.left < 0 {
		return size.Infinite()
	}
	return size.ExactOf(it.left)
}

func (it *repeatEnum[T]) Close() {}

type generateEnum[T any] struct {
	fn      func(int) T
	index   int
	current T
}

func (it *generateEnum[T]) Next() bool {
	it.index++
	it.current = it.fn(it.index)
	return true
}

func (it *generateEnum[T]) Current() T { return it.current }

func (it *generateEnum[T]) Measure() size.Info { return size.Infinite() }

func (it *generateEnum[T]) Close() {}

package pipeline

import "github.com/kbukum/seqkit/size"

// Chunk groups values into slices of n. The final chunk may be shorter.
// Each chunk has its own backing array, so chunks may be retained.
//
// Chunk panics if n is not positive.
func Chunk[T any](p *Pipeline[T], n int) *Pipeline[[]T] {
	if n <= 0 {
		panic("pipeline.Chunk: n must be positive")
	}
	return Chain(p, func(up Enumerator[T]) Enumerator[[]T] {
		return &chunkEnum[T]{source: up, size: n}
	})
}

type chunkEnum[T any] struct {
	source  Enumerator[T]
	size    int
	current []T
}

func (it *chunkEnum[T]) Next() bool {
	batch := make([]T, 0, it.size)
	for len(batch) < it.size && it.source.Next() {
		batch = append(batch, it.source.Current())
	}
	if len(batch) == 0 {
		it.current = nil
		return false
	}
	it.current = batch
	return true
}

func (it *chunkEnum[T]) Current() []T { return it.current }

func (it *chunkEnum[T]) Measure() size.Info {
	m := it.source.Measure()
	if !m.HasValue() {
		return m
	}
	return size.Info{Kind: m.Kind, Value: (m.Value + it.size - 1) / it.size}
}

func (it *chunkEnum[T]) Close() { it.source.Close() }

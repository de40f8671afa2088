package pipeline

import (
	"cmp"

	"github.com/kbukum/seqkit/numeric"
)

// Sum adds the elements of p. Floating-point sums are compensated
// (Neumaier); integer sums are plain. An empty pipeline sums to zero.
func Sum[T numeric.Number](p *Pipeline[T]) T {
	e := p.Enumerate()
	defer e.Close()
	mustBeFinite(e, "Sum")
	var acc numeric.Neumaier[T]
	for e.Next() {
		acc.Add(e.Current())
	}
	return acc.Result()
}

// SumAdder folds elements of a type without + starting from zero.
func SumAdder[T numeric.Adder[T]](p *Pipeline[T], zero T) T {
	e := p.Enumerate()
	defer e.Close()
	mustBeFinite(e, "Sum")
	acc := numeric.NewFold(zero)
	for e.Next() {
		acc.Add(e.Current())
	}
	return acc.Result()
}

// Avg returns the compensated mean of p, absent for an empty pipeline.
func Avg[T numeric.Float](p *Pipeline[T]) Optional[T] {
	e := p.Enumerate()
	defer e.Close()
	mustBeFinite(e, "Avg")
	var acc numeric.Neumaier[T]
	for e.Next() {
		acc.Add(e.Current())
	}
	if mean, ok := numeric.Mean(&acc); ok {
		return Some(mean)
	}
	return None[T](ReasonEmpty)
}

// Min returns the smallest element under less. Of equal minima the first
// encountered is kept.
func Min[T any](p *Pipeline[T], less func(a, b T) bool) Optional[T] {
	return extreme(p, "Min", less)
}

// Max returns the largest element under less. Of equal maxima the first
// encountered is kept.
func Max[T any](p *Pipeline[T], less func(a, b T) bool) Optional[T] {
	return extreme(p, "Max", func(a, b T) bool { return less(b, a) })
}

// MinOf is Min under the natural order.
func MinOf[T cmp.Ordered](p *Pipeline[T]) Optional[T] {
	return Min(p, cmp.Less[T])
}

// MaxOf is Max under the natural order.
func MaxOf[T cmp.Ordered](p *Pipeline[T]) Optional[T] {
	return Max(p, cmp.Less[T])
}

// extreme keeps the first element that nothing later beats under better.
func extreme[T any](p *Pipeline[T], op string, better func(a, b T) bool) Optional[T] {
	e := p.Enumerate()
	defer e.Close()
	mustBeFinite(e, op)
	if !e.Next() {
		return None[T](ReasonEmpty)
	}
	best := e.Current()
	for e.Next() {
		if v := e.Current(); better(v, best) {
			best = v
		}
	}
	return Some(best)
}

package numeric

// Neumaier is a running compensated sum. The zero value is an empty sum.
//
// For integer T the compensation is skipped and Add is a plain +=.
type Neumaier[T Number] struct {
	sum   T
	err   T
	n     int
	float bool
	init  bool
}

// Add accumulates b.
func (s *Neumaier[T]) Add(b T) {
	if !s.init {
		s.float = IsFloat[T]()
		s.init = true
	}
	s.n++
	if !s.float {
		s.sum += b
		return
	}
	s0 := s.sum
	s.sum += b
	if abs(s0) >= abs(b) {
		s.err += (s0 - s.sum) + b
	} else {
		s.err += (b - s.sum) + s0
	}
}

// Sum returns the uncompensated running sum.
func (s *Neumaier[T]) Sum() T { return s.sum }

// Error returns the accumulated correction term.
func (s *Neumaier[T]) Error() T { return s.err }

// Len returns how many terms were added.
func (s *Neumaier[T]) Len() int { return s.n }

// Result returns the compensated sum. Once the running sum is infinite or
// NaN the correction is meaningless and the running sum is returned as is.
func (s *Neumaier[T]) Result() T {
	if !finite(s.sum) {
		return s.sum
	}
	return s.sum + s.err
}

// finite reports whether v is neither infinite nor NaN. It holds for every
// integer.
func finite[T Number](v T) bool { return v-v == 0 }

// Mean returns the compensated average of the terms added so far.
// The correction is divided separately so it is not absorbed by the sum.
func Mean[T Float](s *Neumaier[T]) (T, bool) {
	if s.n == 0 {
		return 0, false
	}
	n := T(s.n)
	if !finite(s.sum) {
		return s.sum / n, true
	}
	return s.sum/n + s.err/n, true
}

// Fold sums values of a type without + by immutable folding.
type Fold[T Adder[T]] struct {
	sum T
}

// NewFold starts a fold from zero, the additive identity.
func NewFold[T Adder[T]](zero T) *Fold[T] {
	return &Fold[T]{sum: zero}
}

// Add accumulates b.
func (f *Fold[T]) Add(b T) { f.sum = f.sum.Add(b) }

// Result returns the folded sum.
func (f *Fold[T]) Result() T { return f.sum }

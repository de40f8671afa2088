package pipeline

// Stage transforms an upstream enumerator into a downstream one.
// The returned enumerator owns upstream and must close it.
type Stage[I, O any] func(upstream Enumerator[I]) Enumerator[O]

// JoinStage combines two upstream enumerators into one.
// The returned enumerator owns both inputs and must close them.
type JoinStage[A, B, O any] func(left Enumerator[A], right Enumerator[B]) Enumerator[O]

// Option configures a chained stage.
type Option func(*options)

type options struct {
	sideEffects bool
	terminable  bool
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSideEffects marks the chained stage as having side effects,
// making the resulting pipeline impure.
func WithSideEffects() Option {
	return func(o *options) { o.sideEffects = true }
}

// Terminable asserts that a filtering stage keeps matching on an infinite
// source, so an unbounded measure stays unbounded instead of degrading to
// unknown.
func Terminable() Option {
	return func(o *options) { o.terminable = true }
}

// Chain appends stage to p. p is referenced, not copied: it is read each
// time the result is enumerated or asked for its purity, so it must stay
// valid for as long as the result is used.
func Chain[I, O any](p *Pipeline[I], stage Stage[I, O], opts ...Option) *Pipeline[O] {
	o := applyOptions(opts)
	return &Pipeline[O]{
		create:   func() Enumerator[O] { return stage(p.Enumerate()) },
		pure:     !o.sideEffects,
		upstream: p.IsPure,
	}
}

// MvChain appends stage to a copy of p taken now. Later changes to the
// caller's pipeline variable do not affect the result.
func MvChain[I, O any](p Pipeline[I], stage Stage[I, O], opts ...Option) *Pipeline[O] {
	o := applyOptions(opts)
	return &Pipeline[O]{
		create: func() Enumerator[O] { return stage(p.Enumerate()) },
		pure:   p.IsPure() && !o.sideEffects,
	}
}

// ChainJoined binds p and other into a two-input stage. other is normalized
// with Of. The result is pure only if both inputs are.
func ChainJoined[A, B, O any](p *Pipeline[A], other Enumerable[B], stage JoinStage[A, B, O], opts ...Option) *Pipeline[O] {
	o := applyOptions(opts)
	right := Of(other)
	return &Pipeline[O]{
		create:   func() Enumerator[O] { return stage(p.Enumerate(), right.Enumerate()) },
		pure:     !o.sideEffects,
		upstream: func() bool { return p.IsPure() && right.IsPure() },
	}
}

// MvChainJoined is ChainJoined over a copy of p taken now.
func MvChainJoined[A, B, O any](p Pipeline[A], other Enumerable[B], stage JoinStage[A, B, O], opts ...Option) *Pipeline[O] {
	o := applyOptions(opts)
	right := Of(other)
	return &Pipeline[O]{
		create:   func() Enumerator[O] { return stage(p.Enumerate(), right.Enumerate()) },
		pure:     p.IsPure() && !o.sideEffects,
		upstream: right.IsPure,
	}
}

package size

// ProvesDifferent reports whether the two counts are provably unequal.
// A false result says nothing: the counts may still differ.
func (i Info) ProvesDifferent(other Info) bool {
	switch {
	case i.Kind == Exact && other.Kind == Exact:
		return i.Value != other.Value
	case i.Kind == Exact && other.Kind == KnownBound:
		return i.Value > other.Value
	case i.Kind == KnownBound && other.Kind == Exact:
		return other.Value > i.Value
	case i.Kind == Unbounded:
		return other.IsFinite()
	case other.Kind == Unbounded:
		return i.IsFinite()
	}
	return false
}

// Add combines the counts of two sequences yielded one after the other.
func (i Info) Add(other Info) Info {
	switch {
	case i.Kind == other.Kind:
		if i.HasValue() {
			return Info{Kind: i.Kind, Value: i.Value + other.Value}
		}
		return Info{Kind: i.Kind}
	case i.HasValue() && other.HasValue():
		return AtMost(i.Value + other.Value)
	case i.IsFinite() && other.IsFinite():
		return Finite()
	case i.Kind == Unbounded || other.Kind == Unbounded:
		return Infinite()
	}
	return Unknowable()
}

// LimitTo caps the count at n, as a take of n elements does.
func (i Info) LimitTo(n int) Info {
	n = max(n, 0)
	switch i.Kind {
	case Exact:
		return ExactOf(min(i.Value, n))
	case KnownBound:
		return AtMost(min(i.Value, n))
	case Unbounded:
		return ExactOf(n)
	}
	return AtMost(n)
}

// Limit combines two counts into the count of a sequence that stops as soon
// as either input stops, as zip does.
func (i Info) Limit(other Info) Info {
	switch {
	case i.Kind == Exact && other.Kind == Exact:
		return ExactOf(min(i.Value, other.Value))
	case i.Kind == Exact && other.Kind == Unbounded:
		return i
	case i.Kind == Unbounded && other.Kind == Exact:
		return other
	case i.HasValue() && other.HasValue():
		return AtMost(min(i.Value, other.Value))
	case i.HasValue():
		return AtMost(i.Value)
	case other.HasValue():
		return AtMost(other.Value)
	case i.Kind == Unbounded && other.Kind == Unbounded:
		return Infinite()
	case i.IsFinite() || other.IsFinite():
		return Finite()
	}
	return Unknowable()
}

// Subtract removes n leading elements, as a skip of n does. Counts floor at zero.
func (i Info) Subtract(n int) Info {
	if !i.HasValue() {
		return i
	}
	return Info{Kind: i.Kind, Value: max(i.Value-max(n, 0), 0)}
}

// Filtered describes the count after dropping an unknown subset of elements.
// terminable asserts that the filter keeps matching on an infinite source,
// so the result stays infinite instead of degrading to Unknown.
func (i Info) Filtered(terminable bool) Info {
	switch i.Kind {
	case Exact:
		if i.Value == 0 {
			return i
		}
		return AtMost(i.Value)
	case Unbounded:
		if terminable {
			return i
		}
		return Unknowable()
	}
	return i
}

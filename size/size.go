package size

import "fmt"

// Boundedness is the category of certainty known about a remaining count.
type Boundedness uint8

const (
	// Unknown asserts nothing, not even that the sequence ends.
	Unknown Boundedness = iota
	// Bounded asserts the count is finite without a numeric bound.
	Bounded
	// KnownBound asserts the count is at most Value.
	KnownBound
	// Unbounded asserts the sequence never ends.
	Unbounded
	// Exact asserts the count equals Value.
	Exact
)

// String returns the name of the kind.
func (b Boundedness) String() string {
	switch b {
	case Unknown:
		return "Unknown"
	case Bounded:
		return "Bounded"
	case KnownBound:
		return "KnownBound"
	case Unbounded:
		return "Unbounded"
	case Exact:
		return "Exact"
	default:
		return fmt.Sprintf("Boundedness(%d)", uint8(b))
	}
}

// Info is what is known about a sequence's remaining element count.
// Value is only meaningful for KnownBound and Exact.
type Info struct {
	Kind  Boundedness
	Value int
}

// ExactOf returns an Info for exactly n remaining elements.
func ExactOf(n int) Info {
	return Info{Kind: Exact, Value: max(n, 0)}
}

// AtMost returns an Info for at most n remaining elements.
func AtMost(n int) Info {
	return Info{Kind: KnownBound, Value: max(n, 0)}
}

// Finite returns an Info for a finite count with no known bound.
func Finite() Info { return Info{Kind: Bounded} }

// Infinite returns an Info for a sequence that never ends.
func Infinite() Info { return Info{Kind: Unbounded} }

// Unknowable returns an Info that asserts nothing.
func Unknowable() Info { return Info{Kind: Unknown} }

// HasValue reports whether Value carries a count or bound.
func (i Info) HasValue() bool {
	return i.Kind == Exact || i.Kind == KnownBound
}

// IsFinite reports whether the count is provably finite.
func (i Info) IsFinite() bool {
	return i.Kind == Exact || i.Kind == KnownBound || i.Kind == Bounded
}

// IsEmpty reports whether the sequence provably yields nothing.
func (i Info) IsEmpty() bool {
	return i.HasValue() && i.Value == 0
}

// IsNonEmpty reports whether the sequence provably yields at least one element.
func (i Info) IsNonEmpty() bool {
	return (i.Kind == Exact && i.Value > 0) || i.Kind == Unbounded
}

func (i Info) String() string {
	if i.HasValue() {
		return fmt.Sprintf("%s(%d)", i.Kind, i.Value)
	}
	return i.Kind.String()
}

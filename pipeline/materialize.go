package pipeline

import "github.com/kbukum/seqkit/size"

// maxPrealloc caps capacity taken from a measure, which may be a loose bound.
const maxPrealloc = 1 << 16

func capacityHint(m size.Info) int {
	if !m.HasValue() {
		return 0
	}
	return min(m.Value, maxPrealloc)
}

// ToList collects p into a new slice owned by the caller.
func ToList[T any](p *Pipeline[T]) []T {
	e := p.Enumerate()
	defer e.Close()
	mustBeFinite(e, "ToList")
	out := make([]T, 0, capacityHint(e.Measure()))
	for e.Next() {
		out = append(out, e.Current())
	}
	return out
}

// Collect is ToList.
func Collect[T any](p *Pipeline[T]) []T { return ToList(p) }

// ToSet collects the distinct elements of p.
func ToSet[T comparable](p *Pipeline[T]) map[T]struct{} {
	e := p.Enumerate()
	defer e.Close()
	mustBeFinite(e, "ToSet")
	out := make(map[T]struct{}, capacityHint(e.Measure()))
	for e.Next() {
		out[e.Current()] = struct{}{}
	}
	return out
}

// ToMaterialized copies the values behind a borrowed pipeline into a new
// slice of the same length. A nil element becomes the zero value of T.
func ToMaterialized[T any](p *Pipeline[*T]) []T {
	e := p.Enumerate()
	defer e.Close()
	mustBeFinite(e, "ToMaterialized")
	out := make([]T, 0, capacityHint(e.Measure()))
	for e.Next() {
		var v T
		if ref := e.Current(); ref != nil {
			v = *ref
		}
		out = append(out, v)
	}
	return out
}

// ToSnapshot copies the values behind a borrowed pipeline and returns a
// pipeline borrowing from the copy, so the result no longer aliases the
// original storage. nil elements stay nil at the same positions.
func ToSnapshot[T any](p *Pipeline[*T]) *Pipeline[*T] {
	e := p.Enumerate()
	defer e.Close()
	mustBeFinite(e, "ToSnapshot")
	n := capacityHint(e.Measure())
	values := make([]T, 0, n)
	present := make([]bool, 0, n)
	for e.Next() {
		ref := e.Current()
		present = append(present, ref != nil)
		if ref != nil {
			values = append(values, *ref)
		}
	}
	// Pointers are taken once values has stopped growing.
	refs := make([]*T, len(present))
	next := 0
	for i, ok := range present {
		if ok {
			refs[i] = &values[next]
			next++
		}
	}
	return FromSlice(refs)
}

// Snapshot collects p and returns a pipeline over the collected values.
// Later traversals do not re-run p's stages.
func Snapshot[T any](p *Pipeline[T]) *Pipeline[T] {
	return FromSlice(ToList(p))
}

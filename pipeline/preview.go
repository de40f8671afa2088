package pipeline

import "github.com/kbukum/seqkit/errors"

// Preview returns up to limit leading elements of a fresh traversal of p.
// Impure pipelines are refused so their side effects never run twice.
func Preview[T any](p *Pipeline[T], limit int) ([]T, error) {
	if limit < 0 {
		return nil, errors.InvalidInput("limit", "must not be negative")
	}
	if !p.IsPure() {
		return nil, errors.ImpurePipeline("Preview")
	}
	e := p.Enumerate()
	defer e.Close()
	out := make([]T, 0, min(limit, maxPrealloc))
	for len(out) < limit && e.Next() {
		out = append(out, e.Current())
	}
	return out, nil
}

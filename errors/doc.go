// Package errors provides the structured error type returned by seqkit.
//
// Terminal operators that require elements fail with SEQUENCE_EMPTY or
// SEQUENCE_AMBIGUOUS; debug tooling refuses impure pipelines with
// PIPELINE_IMPURE. Every error is an *AppError carrying a machine-readable
// code, so callers match on the code rather than on the message:
//
//	v, err := pipeline.Single(p)
//	if errors.IsAmbiguous(err) {
//	    // more than one element
//	}
package errors

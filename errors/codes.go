package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Sequence errors
const (
	// ErrCodeEmpty indicates an operation required an element but the sequence yielded none.
	ErrCodeEmpty ErrorCode = "SEQUENCE_EMPTY"
	// ErrCodeAmbiguous indicates an operation required exactly one element but got more.
	ErrCodeAmbiguous ErrorCode = "SEQUENCE_AMBIGUOUS"
	// ErrCodeUnbounded indicates an operation needing a finite sequence was given an infinite one.
	ErrCodeUnbounded ErrorCode = "SEQUENCE_UNBOUNDED"
	// ErrCodeImpure indicates a pipeline with side effects was asked for a repeatable traversal.
	ErrCodeImpure ErrorCode = "PIPELINE_IMPURE"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var programmerCodes = map[ErrorCode]bool{
	ErrCodeUnbounded: true,
	ErrCodeImpure:    true,
}

// IsProgrammerCode returns true if the code signals misuse of the API
// rather than a property of the data.
func IsProgrammerCode(code ErrorCode) bool {
	return programmerCodes[code]
}

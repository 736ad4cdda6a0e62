package errors

import "fmt"

var (
	// ErrInvalidState rejects an operation not legal for the session's
	// current state (starting twice, zero seats, submitting after skip).
	ErrInvalidState = fmt.Errorf("invalid session state")

	// ErrWrongHolder rejects a submission from a seat that does not
	// hold the sheet for the current round.
	ErrWrongHolder = fmt.Errorf("submitter is not the current holder")

	// ErrAlreadySubmitted rejects a duplicate triple for the same
	// (sheet, round) pair.
	ErrAlreadySubmitted = fmt.Errorf("ideas already submitted for this round")

	// ErrOutOfRange rejects a round index beyond the configured maximum.
	ErrOutOfRange = fmt.Errorf("round out of range")

	// ErrValidation rejects malformed input (wrong idea count, empty
	// strings, unknown sheet).
	ErrValidation = fmt.Errorf("validation failed")

	// ErrSessionNotFound signals a cache miss that storage could not
	// resolve either.
	ErrSessionNotFound = fmt.Errorf("session not found")

	ErrWorkerPanic   = fmt.Errorf("worker panic")
	ErrEmptyWordList = fmt.Errorf("no censored words have been found")
)

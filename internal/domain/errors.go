package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a failure by the stage that produced it.
type Kind string

const (
	KindInvalidInput    Kind = "invalid_input"
	KindExtraction      Kind = "extraction_failure"
	KindTranscription   Kind = "transcription_failure"
	KindContextLoad     Kind = "context_load_failure"
	KindEvaluation      Kind = "evaluation_failure"
	KindStorageNotFound Kind = "storage_not_found"
	KindStorageWrite    Kind = "storage_write_failure"
)

// ErrNotFound is wrapped by every storage_not_found error.
var ErrNotFound = errors.New("not found")

// Error is the error type returned across component boundaries.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap classifies err. A nil err yields nil; an err that already carries a
// Kind keeps it.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf builds a classified error from a format string.
func Errorf(kind Kind, op, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the Kind carried by err, or "" if it has none.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

package dirorm

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotFound is returned when One() finds no matching record.
var ErrNotFound = errors.New("record not found")

// ErrMultipleResults is returned when Get() or One() find more than one record.
var ErrMultipleResults = errors.New("multiple records returned")

// ErrValidation is returned when validate() or Record.Decode() find a mismatch.
var ErrValidation = errors.New("validation error")

// ErrEmptyObjectClass is returned when a search has no object class to match.
var ErrEmptyObjectClass = errors.New("empty object class")

// ErrNoBaseDN is returned when a search has no base DN to start from.
var ErrNoBaseDN = errors.New("empty base dn")

// NotFoundError reports zero matches where exactly one was required.
type NotFoundError struct {
	Name string
	msg  string
}

// NewNotFoundError builds a NotFoundError carrying a preformatted message.
func NewNotFoundError(msg string) *NotFoundError {
	return &NotFoundError{msg: msg}
}

func (e *NotFoundError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return capitalize(e.Name) + " matching query not found"
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// MultipleResultsError reports more than one match where at most one was expected.
type MultipleResultsError struct {
	Name  string
	Count int
	msg   string
}

// NewMultipleResultsError builds a MultipleResultsError carrying a preformatted message.
func NewMultipleResultsError(msg string) *MultipleResultsError {
	return &MultipleResultsError{msg: msg}
}

func (e *MultipleResultsError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return "More than one " + e.Name + " objects returned (got " + strconv.Itoa(e.Count) + ")."
}

func (e *MultipleResultsError) Is(target error) bool { return target == ErrMultipleResults }

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

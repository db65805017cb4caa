// Package lexerr holds the error taxonomy of spec §7, shared by every stage
// of the generator pipeline. It mirrors the teacher's server/serr package:
// an Error type carrying a message plus wrapped cause errors, compatible
// with errors.Is, alongside package-level sentinel errors identifying each
// kind of failure.
package lexerr

import "errors"

var (
	// ErrRegexParse marks a failure parsing a pattern's regular expression.
	// Fatal to the generator per spec §7.
	ErrRegexParse = errors.New("the regular expression could not be parsed")

	// ErrDefinitionsFile marks a problem with the definitions file itself:
	// missing, unreadable, or containing zero valid patterns. Fatal.
	ErrDefinitionsFile = errors.New("the definitions file could not be read")

	// ErrInputFile marks a missing or unreadable input file. Fatal.
	ErrInputFile = errors.New("the input file could not be read")

	// ErrScan marks an unrecognized character encountered while scanning.
	// Recovered locally: the scanner emits an error token and continues.
	ErrScan = errors.New("an unrecognized character was encountered")

	// ErrUnterminatedString marks end-of-input reached while inside a
	// string literal. Surfaces as ErrScan on the opening quote.
	ErrUnterminatedString = errors.New("a string literal was not terminated")
)

// Error is a typed error carrying a message plus one or more causes. It is
// compatible with errors.Is: checking it against any of its causes returns
// true. Modeled directly on the teacher's server/serr.Error.
type Error struct {
	msg   string
	cause []error
}

// New creates an Error with the given message and causes. Causes are
// optional; when present, errors.Is(err, cause) holds for each of them.
func New(msg string, causes ...error) Error {
	e := Error{msg: msg}
	if len(causes) > 0 {
		e.cause = make([]error, len(causes))
		copy(e.cause, causes)
	}
	return e
}

// Error returns the message, with the first cause's message appended if one
// is set.
func (e Error) Error() string {
	if e.msg == "" && e.cause != nil {
		return e.cause[0].Error()
	}
	if e.cause != nil {
		return e.msg + ": " + e.cause[0].Error()
	}
	return e.msg
}

// Unwrap exposes the causes to the errors package (Go 1.20+ multi-unwrap;
// Is below covers 1.19).
func (e Error) Unwrap() []error {
	if len(e.cause) > 0 {
		return e.cause
	}
	return nil
}

// Is reports whether target equals e itself or any of e's causes.
func (e Error) Is(target error) bool {
	if errTarget, ok := target.(Error); ok {
		if e.msg == errTarget.msg && len(e.cause) == len(errTarget.cause) {
			allEqual := true
			for i := range e.cause {
				if e.cause[i] != errTarget.cause[i] {
					allEqual = false
					break
				}
			}
			if allEqual {
				return true
			}
		}
	}

	for _, c := range e.cause {
		if c == target {
			return true
		}
	}
	return false
}

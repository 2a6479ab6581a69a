// Package colerr provides a mechanism to create or wrap errors with a Kind
// so that callers of the column stores and their tooling can classify
// failures without matching on message text.
package colerr

import (
	"bytes"
	"errors"
	"fmt"
	"runtime"
)

// A Kind represents a class of error.
type Kind int

const (
	Other Kind = iota
	Invalid
	NotFound
	Exists
	OutOfRange
	Invariant
)

func (k Kind) String() string {
	switch k {
	case Other:
		return "other error"
	case Invalid:
		return "invalid operation"
	case NotFound:
		return "item does not exist"
	case Exists:
		return "item already exists"
	case OutOfRange:
		return "index out of range"
	case Invariant:
		return "invariant violated"
	}
	return "unknown error kind"
}

type Error struct {
	Kind Kind
	Err  error
}

func pad(b *bytes.Buffer, s string) {
	if b.Len() == 0 {
		return
	}
	b.WriteString(s)
}

func (e *Error) Error() string {
	b := &bytes.Buffer{}
	if e.Kind != Other {
		b.WriteString(e.Kind.String())
	}
	if e.Err != nil {
		pad(b, ": ")
		b.WriteString(e.Err.Error())
	}
	if b.Len() == 0 {
		return "no error"
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns just the Err.Error() string, if present, or the Kind
// string description.
func (e *Error) Message() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Kind != Other {
		return e.Kind.String()
	}
	return "no error"
}

// E generates an error from any mix of:
// - a Kind
// - an existing error
// - a string and optional formatting verbs, like fmt.Errorf (including support
//	for the `%w` verb).
//
// The string & format verbs must be last in the arguments, if present.
func E(args ...interface{}) error {
	if len(args) == 0 {
		panic("no args to colerr.E")
	}
	e := &Error{}
	for i, arg := range args {
		switch arg := arg.(type) {
		case Kind:
			e.Kind = arg
		case error:
			e.Err = arg
		case string:
			e.Err = fmt.Errorf(arg, args[i+1:]...)
			return e
		default:
			_, file, line, _ := runtime.Caller(1)
			return fmt.Errorf("unknown type %T value %v in colerr.E call at %v:%v", arg, arg, file, line)
		}
	}
	return e
}

// Is reports whether any error in err's chain is an *Error of kind k.
func Is(err error, k Kind) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == k {
			return true
		}
		err = e.Err
	}
	return false
}

// IsNotFound reports whether err is classified as NotFound.
func IsNotFound(err error) bool {
	return Is(err, NotFound)
}

// ErrOutOfRange returns an OutOfRange error for index i into a container
// of length n.
func ErrOutOfRange(i, n int) error {
	return E(OutOfRange, "index %d with length %d", i, n)
}

// ErrInvariant returns an Invariant error.  Stores panic with these when
// their internal parallel structures disagree.
func ErrInvariant(format string, args ...interface{}) error {
	return E(append([]interface{}{Invariant, format}, args...)...)
}

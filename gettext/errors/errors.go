// Package gettexterr defines the closed set of failure kinds a catalog
// parse can produce.
//
// The taxonomy mirrors justinas/gettext's error.rs: a small enum rather
// than a tree of wrapped types, since every failure aborts the parse and
// callers only ever need to branch on which kind occurred.
package gettexterr

import "fmt"

// Kind enumerates the ways parsing a catalog can fail.
type Kind int

const (
	// BadMagic means the first four bytes matched neither recognized
	// magic number.
	BadMagic Kind = iota
	// Eof means the file was shorter than the header requires, or a
	// computed offset ran past the end of the file.
	Eof
	// DecodingError means a byte sequence was invalid under the active
	// character encoding.
	DecodingError
	// MalformedMetadata means a metadata line lacked a colon.
	MalformedMetadata
	// MisplacedMetadata means an empty-id entry appeared at a non-zero
	// index.
	MisplacedMetadata
	// UnknownEncoding means the metadata declared a charset label the
	// encoding registry does not recognize.
	UnknownEncoding
	// PluralParsing means the Plural-Forms formula could not be parsed.
	PluralParsing
	// Io means the underlying byte source reported a read failure.
	Io
)

func (k Kind) String() string {
	switch k {
	case BadMagic:
		return "bad magic number"
	case Eof:
		return "unexpected end of file"
	case DecodingError:
		return "invalid byte sequence in a string"
	case MalformedMetadata:
		return "metadata syntax error"
	case MisplacedMetadata:
		return "misplaced metadata"
	case UnknownEncoding:
		return "unknown encoding specified"
	case PluralParsing:
		return "invalid plural expression"
	case Io:
		return "io error"
	default:
		return fmt.Sprintf("gettexterr.Kind(%d)", int(k))
	}
}

// Error is the concrete error type returned by the parser. It carries a
// Kind plus optional context (e.g. the offending label or offset) and,
// for Io, the underlying error.
type Error struct {
	Kind Kind
	// Detail is a short human-readable addition to Kind's message, such
	// as an unrecognized charset label or a decoder's error message.
	// It is empty when Kind's own message is sufficient.
	Detail string
	// Err is the wrapped cause, set only for Kind == Io.
	Err error
}

// New returns an *Error of the given kind with no detail.
func New(k Kind) *Error {
	return &Error{Kind: k}
}

// Newf returns an *Error of the given kind with a formatted detail.
func Newf(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Detail: fmt.Sprintf(format, args...)}
}

// Wrap returns an Io error wrapping err.
func Wrap(err error) *Error {
	return &Error{Kind: Io, Err: err}
}

func (e *Error) Error() string {
	if e.Kind == Io && e.Err != nil {
		return e.Err.Error()
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return e.Kind.String()
}

// Unwrap lets errors.Is/errors.As see through to the wrapped I/O cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, gettexterr.New(gettexterr.Eof)).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Package stderror defines a small error taxonomy that separates errors safe to
// show an external client from errors whose details must stay internal.
//
// Design tenets:
//   - Kinds, not types: a Kind is a value describing a category of error and
//     its class-level defaults (safety, wire codec).
//   - One concrete instance type, *Error, seeded from its Kind at construction.
//   - Interop-first: *Error is a Go error and plays with errors.Is/As.
package stderror

import "strings"

// Code classifies errors into machine-readable categories.
//
// Codes are stringly-typed for stability across serialization boundaries.
// The empty Code means "unspecified" and is what every instance starts with.
type Code string

// Error is an instance of a Kind.
//
// Name, message, kind and trace are fixed at construction. Code, the safe flag
// and suggestions may change afterwards; Error does no locking, so callers that
// share an instance across goroutines serialize those changes themselves.
type Error struct {
	kind        *Kind
	name        string
	msg         string
	hasMsg      bool
	code        Code
	trace       Trace
	suggestions []string
	safe        bool
	cause       error
}

var _ error = (*Error)(nil)

// newError builds an instance of k. skip counts the frames between newError
// and the frame the trace should start at (1 = the caller of newError's caller).
func newError(k *Kind, cause error, skip int, msg []string) *Error {
	if k == nil {
		k = Standard
	}
	e := &Error{
		kind:        k,
		name:        k.name,
		suggestions: []string{},
		safe:        k.DefaultSafe(),
		cause:       cause,
	}
	if len(msg) > 0 {
		e.msg = msg[0]
		e.hasMsg = true
	}
	e.trace = captureTrace(skip + 1)
	return e
}

// Kind returns the kind the instance was constructed from.
func (e *Error) Kind() *Kind {
	if e == nil {
		return nil
	}
	return e.kind
}

// Name is the display name: the name of the instance's own kind.
func (e *Error) Name() string {
	if e == nil {
		return ""
	}
	return e.name
}

// Message returns the construction message and whether one was given.
func (e *Error) Message() (string, bool) {
	if e == nil {
		return "", false
	}
	return e.msg, e.hasMsg
}

// Code returns the machine-readable code, empty until SetCode is called.
func (e *Error) Code() Code {
	if e == nil {
		return ""
	}
	return e.code
}

// SetCode replaces the code and returns e.
func (e *Error) SetCode(c Code) *Error {
	if e == nil {
		return nil
	}
	e.code = c
	return e
}

// Trace returns the stack captured at construction.
func (e *Error) Trace() Trace {
	if e == nil {
		return Trace{}
	}
	return e.trace
}

// MarkSafe flags this instance as safe to show a client and returns e.
// The kind's default and other instances are unaffected.
func (e *Error) MarkSafe() *Error {
	if e == nil {
		return nil
	}
	e.safe = true
	return e
}

// IsSafe reports whether the instance may be shown to a client.
func (e *Error) IsSafe() bool {
	return e != nil && e.safe
}

// Suggest appends a remediation hint and returns e. Hints are kept in
// insertion order, duplicates included.
func (e *Error) Suggest(text string) *Error {
	if e == nil {
		return nil
	}
	e.suggestions = append(e.suggestions, text)
	return e
}

// Suggestions returns a copy of the hints in insertion order.
func (e *Error) Suggestions() []string {
	if e == nil {
		return nil
	}
	out := make([]string, len(e.suggestions))
	copy(out, e.suggestions)
	return out
}

// Unwrap returns the cause passed to Wrap or From, so errors.Is and errors.As
// can see through the instance.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Error returns "<Name>: <message>", or just the name without a message.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.header()
}

// String returns the captured trace, not the message.
//
// A structured trace is rendered under a "<Name>: <message>" header with one
// "    at <function> (<file>:<line>)" line per frame. A snapshot trace is
// returned verbatim.
func (e *Error) String() string {
	if e == nil {
		return "<nil>"
	}
	if !e.trace.Structured() {
		return e.trace.text
	}
	var b strings.Builder
	b.WriteString(e.header())
	writeFrames(&b, e.trace.frames)
	return b.String()
}

func (e *Error) header() string {
	if e.hasMsg && e.msg != "" {
		return e.name + ": " + e.msg
	}
	return e.name
}

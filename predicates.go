// predicates.go — classification helpers over arbitrary errors.
//
// All helpers traverse with errors.As, so they see through fmt.Errorf("%w"),
// errors.Join and Kind.Wrap chains. The first *Error found answers.
package stderror

import "errors"

func asError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of the first *Error in err's chain, or nil.
func KindOf(err error) *Kind {
	if e, ok := asError(err); ok {
		return e.kind
	}
	return nil
}

// IsKind reports whether the first *Error in err's chain is of kind k or a sub-kind.
func IsKind(err error, k *Kind) bool {
	return KindOf(err).Is(k)
}

// IsSafe reports whether err may be shown to a client. Errors that carry no
// *Error are never safe.
func IsSafe(err error) bool {
	e, ok := asError(err)
	return ok && e.IsSafe()
}

// CodeOf returns the code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) Code {
	if e, ok := asError(err); ok {
		return e.code
	}
	return ""
}

// HasCode reports whether the first *Error in err's chain carries code.
func HasCode(err error, code Code) bool {
	e, ok := asError(err)
	return ok && e.code == code
}

// codes.go — conventional codes for the built-in kinds.
//
// Instances never receive a code automatically: Code starts empty and callers
// opt in with SetCode. These constants keep the spelling consistent when they do.
//
// Conventions (documented, not enforced here):
//   - Codes are lowercase snake_case ASCII.
//   - Avoid the empty string for custom codes; it means "unspecified".
package stderror

import "slices"

const (
	CodeUnhandled      Code = "unhandled"
	CodeNotFound       Code = "not_found"
	CodeNotAcceptable  Code = "not_acceptable"
	CodeNotAuthorized  Code = "not_authorized"
	CodeNotImplemented Code = "not_implemented"
)

var builtinCodes = []Code{
	CodeUnhandled,
	CodeNotFound,
	CodeNotAcceptable,
	CodeNotAuthorized,
	CodeNotImplemented,
}

// BuiltinCodes lists the conventional codes in declaration order.
// The caller owns the returned slice.
func BuiltinCodes() []Code { return slices.Clone(builtinCodes) }

// IsBuiltin reports whether c is one of the conventional codes above.
func (c Code) IsBuiltin() bool { return slices.Contains(builtinCodes, c) }

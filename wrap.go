// wrap.go — bringing foreign errors into the taxonomy.
//
// A wrapped cause stays reachable through Unwrap, so errors.Is / errors.As keep
// working across the boundary. Wrapping never copies the cause's message into
// the instance: a safe kind wrapping an internal error still only exposes its own message.
package stderror

// Wrap constructs an instance of k that records cause for errors.Is / errors.As.
func (k *Kind) Wrap(cause error, msg ...string) *Error {
	return newError(k, cause, 1, msg)
}

// From converts any error into an *Error.
//   - nil → nil
//   - an *Error → that instance, unchanged
//   - anything else, including a wrapper around an *Error → an UnhandledError
//     wrapping err, so the wrapper's context is kept
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return newError(Unhandled, err, 1, nil)
}

// format.go — fmt.Formatter for *Error.
//
// Behavior:
//
//	%s, %v   → Error(): "<Name>: <message>"
//	%q       → quoted Error()
//	%+v      → verbose, multi-line:
//	             name=<Name> code=<code> safe=<bool> msg="<message>"
//	             suggestions: "a" "b"
//	             cause: <formatted with %+v>
//	             stack:
//	               funcA file.go:123
//
// String() is deliberately not used by fmt here; it returns the trace.
package stderror

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter; see the table above.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func (e *Error) formatVerbose(w io.Writer) {
	if e == nil {
		_, _ = io.WriteString(w, "<nil>")
		return
	}

	_, _ = fmt.Fprintf(w, "name=%s ", e.name)
	if e.code != "" {
		_, _ = fmt.Fprintf(w, "code=%s ", e.code)
	}
	_, _ = fmt.Fprintf(w, "safe=%t msg=%q", e.safe, e.msg)

	if len(e.suggestions) > 0 {
		_, _ = io.WriteString(w, "\nsuggestions:")
		for _, s := range e.suggestions {
			_, _ = fmt.Fprintf(w, " %q", s)
		}
	}

	if e.cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", e.cause)
	}

	if e.trace.Structured() {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range e.trace.frames {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	} else if e.trace.text != "" {
		_, _ = io.WriteString(w, "\nstack:\n")
		_, _ = io.WriteString(w, e.trace.text)
	}
}

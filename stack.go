// stack.go — stack capture for error construction.
//
// Two strategies:
//   - structured: runtime.Callers + runtime.CallersFrames, skipping the
//     constructor frames so the first frame is the code that built the error.
//   - snapshot: runtime/debug.Stack text. It keeps every frame of the capturing
//     goroutine, constructor frames included. That imprecision is accepted.
//
// The strategy is picked once at init by probing runtime.Callers. Configure can
// override it; nothing re-probes per construction.
package stderror

import (
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"sync/atomic"
)

// Frame is one resolved call site of a structured trace.
type Frame struct {
	Function string
	File     string
	Line     int
	PC       uintptr
}

// Stack lists frames innermost first.
type Stack []Frame

// defaultMaxDepth bounds structured captures.
const defaultMaxDepth = 64

// Trace is the stack captured when an error was constructed. It holds either
// resolved frames or a textual snapshot, never both.
type Trace struct {
	frames Stack
	text   string
}

// Structured reports whether the trace holds resolved frames.
func (t Trace) Structured() bool { return t.frames != nil }

// Frames returns a copy of the resolved frames (nil for a snapshot).
func (t Trace) Frames() Stack {
	if t.frames == nil {
		return nil
	}
	out := make(Stack, len(t.frames))
	copy(out, t.frames)
	return out
}

// String renders the frames one per line, or returns the snapshot text.
func (t Trace) String() string {
	if !t.Structured() {
		return t.text
	}
	var b strings.Builder
	writeFrames(&b, t.frames)
	return strings.TrimPrefix(b.String(), "\n")
}

func writeFrames(b *strings.Builder, frames Stack) {
	for _, fr := range frames {
		b.WriteString("\n    at ")
		b.WriteString(fr.Function)
		b.WriteString(" (")
		b.WriteString(fr.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(fr.Line))
		b.WriteByte(')')
	}
}

// capturer is the strategy selected at init or by Configure.
type capturer struct {
	mode  StackMode
	depth int
}

var activeCapturer atomic.Pointer[capturer]

func init() {
	activeCapturer.Store(&capturer{mode: probeStackMode(), depth: defaultMaxDepth})
}

// probeStackMode reports which strategy the runtime supports.
func probeStackMode() StackMode {
	var pc [1]uintptr
	if runtime.Callers(1, pc[:]) > 0 {
		return StackStructured
	}
	return StackSnapshot
}

// currentStackMode returns the strategy in effect.
func currentStackMode() StackMode { return activeCapturer.Load().mode }

// captureTrace records a trace with the active strategy. skip counts frames
// above the caller of captureTrace (0 = the caller itself).
func captureTrace(skip int) Trace {
	return activeCapturer.Load().capture(skip + 1)
}

// capture records a trace whose first frame is skip frames above the caller
// of capture. Snapshot traces ignore skip.
func (c *capturer) capture(skip int) Trace {
	if c.mode == StackSnapshot {
		return Trace{text: string(debug.Stack())}
	}

	depth := c.depth
	if depth <= 0 {
		depth = defaultMaxDepth
	}

	// runtime.Callers counts itself and this method.
	pc := make([]uintptr, depth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		// Nothing left above skip; a snapshot keeps the error debuggable.
		return Trace{text: string(debug.Stack())}
	}

	resolved := runtime.CallersFrames(pc[:n])
	frames := make(Stack, 0, n)
	for {
		fr, more := resolved.Next()
		frames = append(frames, Frame{Function: fr.Function, File: fr.File, Line: fr.Line, PC: fr.PC})
		if !more {
			break
		}
	}
	return Trace{frames: frames}
}

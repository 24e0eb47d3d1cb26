// stack_test.go — verification of trace capture semantics and metadata.
package stderror

import (
	"strings"
	"testing"
)

// --- Helpers to build a known call chain -------------------------------------

var structuredCapturer = &capturer{mode: StackStructured, depth: defaultMaxDepth}

// stackGrab captures with the provided skipExtra and returns the frames.
func stackGrab(skipExtra int) Stack {
	return structuredCapturer.capture(skipExtra + 1).frames
}

func stackTestLevel2(skipExtra int) Stack {
	// First recorded frame with skipExtra=0 should be this function.
	return stackGrab(skipExtra)
}

func stackTestLevel1(skipExtra int) Stack {
	// With skipExtra=1, first recorded frame should be THIS function (caller of level2).
	return stackTestLevel2(skipExtra)
}

// newFromHelper constructs through a named frame so tests can find it.
func newFromHelper() *Error {
	return NotFound.New("missing")
}

func createFromHelper() *Error {
	return NotFound.Create("missing")
}

// --- Tests -------------------------------------------------------------------

func TestCapture_UsesDefaultWhenDepthZero(t *testing.T) {
	t.Parallel()

	s := (&capturer{mode: StackStructured}).capture(0).frames // depth<=0 → defaultMaxDepth
	if len(s) == 0 {
		t.Fatalf("expected non-empty stack when maxDepth=0 (default), got 0")
	}
	if len(s) > defaultMaxDepth {
		t.Fatalf("stack length exceeds defaultMaxDepth: len=%d default=%d", len(s), defaultMaxDepth)
	}
}

func TestCapture_RespectsDepthLimit(t *testing.T) {
	t.Parallel()

	const limit = 3
	s := (&capturer{mode: StackStructured, depth: limit}).capture(0).frames
	if len(s) == 0 {
		t.Fatalf("expected some frames with small limit; got 0")
	}
	if len(s) > limit {
		t.Fatalf("expected <= %d frames; got %d", limit, len(s))
	}
}

func TestCapture_SkipExtraSkipsCorrectFrames(t *testing.T) {
	t.Parallel()

	s0 := stackTestLevel1(0)
	if len(s0) == 0 {
		t.Fatalf("got empty stack for skipExtra=0")
	}
	if !strings.HasSuffix(s0[0].Function, "stackTestLevel2") {
		t.Fatalf("expected first frame to be stackTestLevel2; got %q", s0[0].Function)
	}

	s1 := stackTestLevel1(1)
	if len(s1) == 0 {
		t.Fatalf("got empty stack for skipExtra=1")
	}
	if !strings.HasSuffix(s1[0].Function, "stackTestLevel1") {
		t.Fatalf("expected first frame to be stackTestLevel1; got %q", s1[0].Function)
	}
}

func TestCapture_FallsBackToSnapshotWhenNoFramesLeft(t *testing.T) {
	t.Parallel()

	const absurdSkip = 1 << 20
	tr := (&capturer{mode: StackStructured, depth: 16}).capture(absurdSkip)
	if tr.Structured() {
		t.Fatalf("expected a snapshot when skip filters out all frames; got %d frames", len(tr.frames))
	}
	if !strings.Contains(tr.String(), "goroutine ") {
		t.Fatalf("snapshot text missing; got %q", tr.String())
	}
}

func TestCapture_SnapshotModeIgnoresSkip(t *testing.T) {
	t.Parallel()

	tr := (&capturer{mode: StackSnapshot}).capture(0)
	if tr.Structured() || !strings.Contains(tr.String(), "TestCapture_SnapshotModeIgnoresSkip") {
		t.Fatalf("snapshot should hold the whole goroutine stack; got %q", tr.String())
	}
}

func TestStack_MetadataPresence(t *testing.T) {
	t.Parallel()

	s := stackTestLevel1(0)
	if len(s) == 0 {
		t.Fatalf("empty stack")
	}

	maxCheck := min(len(s), 5)
	for i := 0; i < maxCheck; i++ {
		fr := s[i]
		if fr.PC == 0 {
			t.Fatalf("frame %d has zero PC", i)
		}
		if fr.Function == "" {
			t.Fatalf("frame %d has empty Function", i)
		}
		if fr.File == "" {
			t.Fatalf("frame %d has empty File", i)
		}
		if fr.Line <= 0 {
			t.Fatalf("frame %d has non-positive Line: %d", i, fr.Line)
		}
	}
}

func TestProbe_SelectsStructured(t *testing.T) {
	t.Parallel()

	if got := probeStackMode(); got != StackStructured {
		t.Fatalf("probeStackMode() = %q, want %q", got, StackStructured)
	}
}

func TestNew_TraceStartsAtCaller(t *testing.T) {
	t.Parallel()

	for name, build := range map[string]func() *Error{
		"New":    newFromHelper,
		"Create": createFromHelper,
	} {
		t.Run(name, func(t *testing.T) {
			tr := build().Trace()
			if !tr.Structured() {
				t.Fatalf("expected structured trace")
			}
			fr := tr.Frames()
			if len(fr) == 0 {
				t.Fatalf("empty trace")
			}
			if !strings.HasSuffix(fr[0].Function, "FromHelper") {
				t.Fatalf("first frame should be the helper that called %s; got %q", name, fr[0].Function)
			}
			for _, f := range fr {
				if strings.Contains(f.Function, "newError") || strings.Contains(f.Function, "captureTrace") {
					t.Fatalf("constructor frame leaked into trace: %q", f.Function)
				}
			}
		})
	}
}

func TestTrace_FramesIsCopy(t *testing.T) {
	t.Parallel()

	tr := New().Trace()
	fr := tr.Frames()
	if len(fr) == 0 {
		t.Fatalf("empty trace")
	}
	fr[0].Function = "mutated"
	if tr.Frames()[0].Function == "mutated" {
		t.Fatalf("Frames() must return a copy")
	}
}

func TestTrace_StringRendersFrames(t *testing.T) {
	t.Parallel()

	s := newFromHelper().Trace().String()
	if !strings.HasPrefix(s, "    at ") {
		t.Fatalf("structured trace should start with a frame line; got %q", s)
	}
	if !strings.Contains(s, "newFromHelper (") {
		t.Fatalf("trace should name the calling function; got %q", s)
	}
}

func TestTrace_SnapshotString(t *testing.T) {
	t.Parallel()

	tr := Trace{text: "goroutine 1 [running]:\nmain.main()"}
	if tr.Structured() {
		t.Fatalf("snapshot trace reported as structured")
	}
	if tr.Frames() != nil {
		t.Fatalf("snapshot trace should have no frames")
	}
	if tr.String() != "goroutine 1 [running]:\nmain.main()" {
		t.Fatalf("snapshot String() = %q", tr.String())
	}
}

// codes_test.go — verification for built-in codes & helpers.
package stderror

import (
	"reflect"
	"testing"
)

func TestIsBuiltin_AllBuiltinCodesAreBuiltin(t *testing.T) {
	t.Parallel()

	for i, c := range BuiltinCodes() {
		if !c.IsBuiltin() {
			t.Fatalf("index=%d code=%q: expected IsBuiltin()=true", i, c)
		}
	}
}

func TestIsBuiltin_CustomAndEmptyAreNotBuiltin(t *testing.T) {
	t.Parallel()

	t.Run("custom_code", func(t *testing.T) {
		if Code("custom_code").IsBuiltin() {
			t.Fatalf("expected custom_code to be non-builtin")
		}
	})
	t.Run("empty_string", func(t *testing.T) {
		var empty Code
		if empty.IsBuiltin() {
			t.Fatalf("expected empty code to be non-builtin")
		}
	})
}

func TestBuiltinCodes_DefensiveCopy(t *testing.T) {
	t.Parallel()

	orig := BuiltinCodes()
	mut := BuiltinCodes()
	mut[0] = Code("custom_code")

	if after := BuiltinCodes(); !reflect.DeepEqual(after, orig) {
		t.Fatalf("BuiltinCodes() appears to expose internal slice; mutation leaked.\nwant=%v\ngot=%v", orig, after)
	}
}

func TestBuiltinCodes_LengthAndOrder(t *testing.T) {
	t.Parallel()

	// Keep this list in sync with codes.go.
	want := []Code{
		CodeUnhandled,
		CodeNotFound,
		CodeNotAcceptable,
		CodeNotAuthorized,
		CodeNotImplemented,
	}
	if got := BuiltinCodes(); !reflect.DeepEqual(got, want) {
		t.Fatalf("BuiltinCodes() order/content mismatch.\nwant=%v\ngot=%v", want, got)
	}
}

func TestCodes_NotAssignedAutomatically(t *testing.T) {
	t.Parallel()

	for _, k := range []*Kind{Unhandled, NotFound, NotAcceptable, NotAuthorized, NotImplemented} {
		if c := k.New().Code(); c != "" {
			t.Fatalf("%s.New().Code() = %q, want empty", k, c)
		}
	}
}

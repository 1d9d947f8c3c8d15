package herrors

import (
	"errors"
	"testing"
)

var errSentinel = errors.New("boom")

func TestError_Wrapping(t *testing.T) {
	e := New(SemanticError, errSentinel)

	if !errors.Is(e, errSentinel) {
		t.Error("errors.Is should see through to the wrapped sentinel")
	}
	if got := e.Error(); got != "semantic error: boom" {
		t.Errorf("Error() = %q, want %q", got, "semantic error: boom")
	}
	if e.Kind.ExitCode() != 2 {
		t.Errorf("ExitCode() = %d, want 2", e.Kind.ExitCode())
	}
}

func TestKind_ExitCode(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{ConfigError, 1},
		{IoError, 1},
		{ParseError, 1},
		{SemanticError, 2},
		{InternalInvariantViolated, 1},
	}
	for _, c := range cases {
		if got := c.kind.ExitCode(); got != c.want {
			t.Errorf("%v.ExitCode() = %d, want %d", c.kind, got, c.want)
		}
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(New(ConfigError, errSentinel)); got != ConfigError {
		t.Errorf("KindOf(wrapped) = %v, want ConfigError", got)
	}
	if got := KindOf(errSentinel); got != InternalInvariantViolated {
		t.Errorf("KindOf(unwrapped) = %v, want InternalInvariantViolated", got)
	}
}

func TestNewf(t *testing.T) {
	e := Newf(ParseError, "line %d: bad token %q", 3, "??")
	want := `parse error: line 3: bad token "??"`
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

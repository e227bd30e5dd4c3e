package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	cases := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindTransform, "transform"},
		{KindLayout, "layout"},
		{KindConfig, "config"},
		{ErrorKind(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(c.kind), got, c.want)
		}
	}
}

func TestErrorFormatting(t *testing.T) {
	err := Newf("scale.NewAxisTransform", KindTransform, "degenerate world range [%g, %g]", 5.0, 5.0)
	msg := err.Error()
	if !strings.Contains(msg, "scale.NewAxisTransform") {
		t.Errorf("message should contain the operation, got %q", msg)
	}
	if !strings.Contains(msg, "[transform]") {
		t.Errorf("message should contain the kind, got %q", msg)
	}
	if !strings.Contains(msg, "degenerate world range [5, 5]") {
		t.Errorf("message should contain the cause, got %q", msg)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := New("layout.Apply", KindLayout, cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

package shader

import (
	"strings"
	"testing"
)

func TestCompileErrorMessage(t *testing.T) {
	err := &CompileError{Stage: "vertex", Log: "0:3: syntax error"}

	msg := err.Error()
	if !strings.Contains(msg, "vertex") {
		t.Errorf("expected stage in message, got %q", msg)
	}
	if !strings.Contains(msg, "syntax error") {
		t.Errorf("expected diagnostics in message, got %q", msg)
	}
}

func TestLinkErrorMessage(t *testing.T) {
	err := &LinkError{Log: "unresolved symbol"}

	if !strings.Contains(err.Error(), "unresolved symbol") {
		t.Errorf("expected diagnostics in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "link") {
		t.Errorf("expected link in message, got %q", err.Error())
	}
}

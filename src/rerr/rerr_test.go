package rerr

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	err := New(ParseError, "ReadKeyFields", "e", errors.New("boom"))

	if !errors.Is(err, ErrParse) {
		t.Errorf("expected errors.Is(err, ErrParse) to be true")
	}
	if errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected errors.Is(err, ErrInvalidArgument) to be false")
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := New(IoError, "WriteKeyFile", "path", inner)

	if !errors.Is(err, inner) {
		t.Errorf("expected errors.Is(err, inner) to be true via Unwrap")
	}
}

func TestErrorMessageIncludesArg(t *testing.T) {
	err := New(InvalidArgument, "EGCD", "a,b", errors.New("must be positive"))
	msg := err.Error()
	if msg == "" {
		t.Fatalf("expected a non-empty error message")
	}
	if want := "EGCD"; !strings.Contains(msg, want) {
		t.Errorf("error message %q does not mention op %q", msg, want)
	}
	if want := "a,b"; !strings.Contains(msg, want) {
		t.Errorf("error message %q does not mention arg %q", msg, want)
	}
}

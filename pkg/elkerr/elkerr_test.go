package elkerr

import (
	"errors"
	"strings"
	"testing"
)

func TestUnsupportedConfigurationCarriesPrefix(t *testing.T) {
	err := NewUnsupportedConfiguration(`Unknown layout algorithm: "foo.bar.baz"`)
	if !strings.HasPrefix(err.Message, "org.eclipse.elk.core.UnsupportedConfigurationException: ") {
		t.Errorf("message = %q, missing expected prefix", err.Message)
	}
	if err.Kind != UnsupportedConfiguration {
		t.Errorf("Kind = %v, want UnsupportedConfiguration", err.Kind)
	}
}

func TestUnsupportedGraphCarriesPrefix(t *testing.T) {
	err := NewUnsupportedGraph("edge escapes its container")
	if !strings.HasPrefix(err.Message, "org.eclipse.elk.core.UnsupportedGraphException: ") {
		t.Errorf("message = %q, missing expected prefix", err.Message)
	}
}

func TestErrorsIsMatchesByKind(t *testing.T) {
	err := NewInvalidGraph("bad graph")
	if !errors.Is(err, NewInvalidGraph("different message")) {
		t.Error("errors.Is should match on Kind regardless of message")
	}
	if errors.Is(err, NewMissingArgument("x")) {
		t.Error("errors.Is should not match across different Kinds")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		MissingArgument:          "MissingArgument",
		InvalidGraph:             "InvalidGraph",
		UnsupportedConfiguration: "UnsupportedConfiguration",
		UnsupportedGraph:         "UnsupportedGraph",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

package registry

import (
	"context"
	"testing"

	"github.com/mark/elkgo/pkg/elkgraph"
	"github.com/mark/elkgo/pkg/provider"
)

func TestKnownAlgorithmsAreRegistered(t *testing.T) {
	r := New()
	want := []string{
		"org.eclipse.elk.fixed",
		"org.eclipse.elk.force",
		"org.eclipse.elk.layered",
		"org.eclipse.elk.mrtree",
		"org.eclipse.elk.radial",
		"org.eclipse.elk.rectpacking",
		"org.eclipse.elk.sporeCompaction",
		"org.eclipse.elk.sporeOverlap",
		"org.eclipse.elk.stress",
	}
	known := r.Known()
	if len(known) != len(want) {
		t.Fatalf("Known() = %v, want %v entries", known, len(want))
	}
	for i, id := range want {
		if known[i] != id {
			t.Errorf("Known()[%d] = %q, want %q", i, known[i], id)
		}
	}
}

func TestGetReturnsFreshInstances(t *testing.T) {
	r := New()
	// stress.Provider has a field; pointers to separately allocated
	// zero-size values (such as layered.Provider) may compare equal in Go.
	p1, ok := r.Get("org.eclipse.elk.stress")
	if !ok {
		t.Fatal("expected stress provider to be registered")
	}
	p2, ok := r.Get("org.eclipse.elk.stress")
	if !ok {
		t.Fatal("expected stress provider to be registered")
	}
	if p1 == p2 {
		t.Error("Get should return a fresh instance each call")
	}
}

func TestGetUnknownAlgorithm(t *testing.T) {
	if _, ok := New().Get("foo.bar.baz"); ok {
		t.Error("expected ok=false for unknown algorithm id")
	}
}

type stubProvider struct{ called bool }

func (s *stubProvider) Layout(ctx context.Context, c *elkgraph.Container, global map[string]interface{}) error {
	s.called = true
	return nil
}

func TestRegisterOverridesBuiltin(t *testing.T) {
	r := New()
	stub := &stubProvider{}
	r.Register("org.eclipse.elk.layered", func() provider.Provider { return stub })

	p, ok := r.Get("org.eclipse.elk.layered")
	if !ok {
		t.Fatal("expected overridden algorithm to resolve")
	}
	if p != stub {
		t.Error("Register should override the builtin factory")
	}
}

package module

import (
	"testing"

	"wtwm/internal/modkit"
)

// both contracts stay interchangeable
var (
	_ Module        = modkit.Module(nil)
	_ modkit.Module = Module(nil)
)

func TestModule_NameAndPorts(t *testing.T) {
	m := fakeModule{name: "mentions", ports: 3}
	if m.Name() != "mentions" || m.Ports() != 3 {
		t.Fatalf("unexpected module surface: %q %v", m.Name(), m.Ports())
	}
}

package flavor

import (
	"strings"
	"testing"
)

func TestVictoryMembership(t *testing.T) {
	p := NewPicker(42)
	valid := VictoryLines("Celtics")

	for i := 0; i < 20; i++ {
		line := p.Victory("Celtics")
		if !contains(valid, line) {
			t.Fatalf("Victory() = %q, not in the pool", line)
		}
		if !strings.Contains(line, "Celtics") {
			t.Fatalf("Victory() = %q, missing team name", line)
		}
	}
}

func TestDefeatMembership(t *testing.T) {
	p := NewPicker(42)
	valid := DefeatLines("Lakers")

	for i := 0; i < 20; i++ {
		line := p.Defeat("Lakers")
		if !contains(valid, line) {
			t.Fatalf("Defeat() = %q, not in the pool", line)
		}
	}
}

func TestSeededSequenceIsStable(t *testing.T) {
	a, b := NewPicker(7), NewPicker(7)
	for i := 0; i < 10; i++ {
		if got, want := a.Victory("Nuggets"), b.Victory("Nuggets"); got != want {
			t.Fatalf("pick %d: %q != %q for the same seed", i, got, want)
		}
	}
}

func contains(pool []string, s string) bool {
	for _, p := range pool {
		if p == s {
			return true
		}
	}
	return false
}

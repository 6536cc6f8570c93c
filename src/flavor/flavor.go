// Package flavor supplies the one-liners the detail page shows under
// a final score. Selection is seeded so a given session is stable and
// tests can assert membership instead of exact picks.
package flavor

import (
	"fmt"
	"math/rand"
)

var victoryPool = []string{
	"%s take it home!",
	"Ball game. %s win.",
	"%s close it out.",
	"%s get the W.",
	"Final: %s stand tall.",
	"Lights out. %s win it.",
	"%s handle business.",
}

var defeatPool = []string{
	"Tough night for %s.",
	"%s come up short.",
	"Not their night. %s fall.",
	"%s will want this one back.",
	"%s run out of gas late.",
	"Back to the drawing board for %s.",
}

// Picker hands out flavor lines. Not safe for concurrent use; the
// update loop owns it.
type Picker struct {
	rng *rand.Rand
}

// NewPicker seeds a picker. The same seed yields the same sequence.
func NewPicker(seed int64) *Picker {
	return &Picker{rng: rand.New(rand.NewSource(seed))}
}

// Victory formats a winner's line.
func (p *Picker) Victory(team string) string {
	return fmt.Sprintf(victoryPool[p.rng.Intn(len(victoryPool))], team)
}

// Defeat formats a loser's line.
func (p *Picker) Defeat(team string) string {
	return fmt.Sprintf(defeatPool[p.rng.Intn(len(defeatPool))], team)
}

// VictoryLines expands the victory pool for a team, for membership
// checks.
func VictoryLines(team string) []string {
	return expand(victoryPool, team)
}

// DefeatLines expands the defeat pool for a team.
func DefeatLines(team string) []string {
	return expand(defeatPool, team)
}

func expand(pool []string, team string) []string {
	out := make([]string, len(pool))
	for i, tmpl := range pool {
		out[i] = fmt.Sprintf(tmpl, team)
	}
	return out
}

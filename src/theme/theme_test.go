package theme

import (
	"testing"

	"github.com/courtside/courtside/src/geo"
)

func TestByName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"", "dark"},
		{"solarized", "dark"},
	}
	for _, tt := range tests {
		if got := ByName(tt.in); got.Name != tt.want {
			t.Errorf("ByName(%q) = %q, want %q", tt.in, got.Name, tt.want)
		}
	}
}

func TestEveryTeamHasColor(t *testing.T) {
	if len(teamColors) != 30 {
		t.Errorf("team color table has %d entries, want 30", len(teamColors))
	}
	for _, code := range geo.Tricodes() {
		if TeamColor(code, Dark) == Dark.Colors.Text {
			t.Errorf("tricode %s falls back to text color, want a team accent", code)
		}
	}
}

func TestTeamColorFallback(t *testing.T) {
	if got := TeamColor("SEA", Dark); got != Dark.Colors.Text {
		t.Errorf("TeamColor(unknown) = %v, want theme text color", got)
	}
}

func TestHeatColorRamp(t *testing.T) {
	for _, th := range []Theme{Dark, Light} {
		cold := HeatColor("cold", th)
		warm := HeatColor("warm", th)
		hot := HeatColor("hot", th)
		fire := HeatColor("fire", th)

		if cold != th.Colors.Muted {
			t.Errorf("%s: cold = %v, want muted", th.Name, cold)
		}
		distinct := map[interface{}]bool{warm: true, hot: true, fire: true}
		if len(distinct) != 3 {
			t.Errorf("%s: warm/hot/fire colors should be pairwise distinct", th.Name)
		}
	}
}

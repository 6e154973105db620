package hud

import (
	"reflect"
	"testing"

	"multilight/internal/technique"
)

func TestStatusLines(t *testing.T) {
	tests := []struct {
		name string
		st   Status
		want []string
	}{
		{
			name: "tier 3 with msaa",
			st:   Status{FPS: 60, MSAASamples: 4, Anisotropy: 16, State: technique.Tier3SinglePass, LightRadius: 100},
			want: []string{
				"FPS: 60",
				"Multisample anti-aliasing: 4x",
				"Anisotropic filtering: 16x",
				"Shader Model 3.0",
				"Technique: Single pass lighting",
				"Light radius: 100",
				"",
				"Press H to display help",
			},
		},
		{
			name: "tier 2 multi pass without msaa",
			st:   Status{FPS: 144, MSAASamples: 0, Anisotropy: 1, State: technique.Tier2MultiPass, LightRadius: 101.5},
			want: []string{
				"FPS: 144",
				"Anisotropic filtering: 1x",
				"Shader Model 2.0",
				"Technique: Multi pass lighting",
				"Light radius: 101.5",
				"",
				"Press H to display help",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusLines(tt.st)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StatusLines() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestLinesSelectsScreen(t *testing.T) {
	st := Status{State: technique.Tier2SinglePass}
	if got := Lines(true, st); !reflect.DeepEqual(got, HelpLines) {
		t.Errorf("help screen = %q", got)
	}
	got := Lines(false, st)
	if got[len(got)-1] != "Press H to display help" {
		t.Errorf("status screen ends with %q", got[len(got)-1])
	}
	if HelpLines[len(HelpLines)-1] != "Press H to hide help" {
		t.Errorf("help screen ends with %q", HelpLines[len(HelpLines)-1])
	}
}

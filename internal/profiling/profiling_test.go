package profiling

import (
	"testing"
	"time"
)

func TestFormatMillis(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0ms"},
		{4200 * time.Microsecond, "4.2ms"},
		{3 * time.Millisecond, "3ms"},
		{12349 * time.Microsecond, "12.3ms"},
		{50 * time.Microsecond, "0ms"},
	}
	for _, tt := range tests {
		if got := formatMillis(tt.d); got != tt.want {
			t.Errorf("formatMillis(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestTopN(t *testing.T) {
	r := NewRecorder()
	r.Add("scene.Update", 300*time.Microsecond)
	r.Add("renderer.Render", 4*time.Millisecond)
	r.Add("renderer.Render", 200*time.Microsecond)
	r.Add("hud.Compose", 100*time.Microsecond)

	if got, want := r.TopN(2), "renderer.Render:4.2ms, scene.Update:0.3ms"; got != want {
		t.Errorf("TopN(2) = %q, want %q", got, want)
	}
	if got := len(r.Phases()); got != 3 {
		t.Errorf("phases = %d, want 3", got)
	}
	if got, want := r.TopN(10), "renderer.Render:4.2ms, scene.Update:0.3ms, hud.Compose:0.1ms"; got != want {
		t.Errorf("TopN(10) = %q, want %q", got, want)
	}

	r.ResetFrame()
	if got := r.TopN(5); got != "" {
		t.Errorf("TopN after reset = %q", got)
	}
}

func TestTrackUsesClock(t *testing.T) {
	r := NewRecorder()
	base := time.Unix(0, 0)
	calls := 0
	r.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * 2 * time.Millisecond)
	}

	stop := r.Track("device.BeginFrame")
	stop()

	phases := r.Phases()
	if len(phases) != 1 || phases[0].Duration != 2*time.Millisecond {
		t.Errorf("phases = %v, want one 2ms phase", phases)
	}
}

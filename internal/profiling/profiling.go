// Package profiling records how long named phases of a frame take.
//
// Usage:
//
//	defer profiling.Track("renderer.Render")()
package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Phase is the accumulated duration of one named phase.
type Phase struct {
	Name     string
	Duration time.Duration
}

// Recorder accumulates phase durations for the current frame.
type Recorder struct {
	mu     sync.Mutex
	totals map[string]time.Duration
	now    func() time.Time
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{totals: make(map[string]time.Duration), now: time.Now}
}

var std = NewRecorder()

// Track returns a stop function that adds the elapsed time to name.
func (r *Recorder) Track(name string) func() {
	start := r.now()
	return func() {
		r.Add(name, r.now().Sub(start))
	}
}

// Add adds d to the total of name.
func (r *Recorder) Add(name string, d time.Duration) {
	r.mu.Lock()
	r.totals[name] += d
	r.mu.Unlock()
}

// ResetFrame clears the totals. Call at the start of each frame.
func (r *Recorder) ResetFrame() {
	r.mu.Lock()
	clear(r.totals)
	r.mu.Unlock()
}

// Phases returns the totals sorted by duration, longest first. Ties are
// ordered by name.
func (r *Recorder) Phases() []Phase {
	r.mu.Lock()
	out := make([]Phase, 0, len(r.totals))
	for name, d := range r.totals {
		out = append(out, Phase{Name: name, Duration: d})
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Duration != out[j].Duration {
			return out[i].Duration > out[j].Duration
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TopN formats the n longest phases, e.g. "renderer.Render:4.2ms, scene.Update:0.3ms".
func (r *Recorder) TopN(n int) string {
	phases := r.Phases()
	if n < len(phases) {
		phases = phases[:n]
	}
	parts := make([]string, len(phases))
	for i, p := range phases {
		parts[i] = p.Name + ":" + formatMillis(p.Duration)
	}
	return strings.Join(parts, ", ")
}

// formatMillis keeps one decimal and drops a trailing ".0".
func formatMillis(d time.Duration) string {
	tenths := d.Microseconds() / 100
	s := strconv.FormatInt(tenths/10, 10)
	if frac := tenths % 10; frac != 0 {
		s += "." + strconv.FormatInt(frac, 10)
	}
	return s + "ms"
}

// Track records into the package recorder.
func Track(name string) func() { return std.Track(name) }

// ResetFrame clears the package recorder.
func ResetFrame() { std.ResetFrame() }

// Phases returns the package recorder's phases.
func Phases() []Phase { return std.Phases() }

// TopN formats the package recorder's longest phases.
func TopN(n int) string { return std.TopN(n) }

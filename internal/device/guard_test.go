package device

import (
	"errors"
	"reflect"
	"testing"
)

type fakeDevice struct {
	log      *[]string
	statuses []Status
	resetErr error
}

func (d *fakeDevice) Probe() Status {
	if len(d.statuses) == 0 {
		return Valid
	}
	s := d.statuses[0]
	d.statuses = d.statuses[1:]
	return s
}

func (d *fakeDevice) Reset() error {
	*d.log = append(*d.log, "reset")
	return d.resetErr
}

type fakeOwner struct {
	name     string
	log      *[]string
	lostErr  error
	resetErr error
}

func (o *fakeOwner) OnLostDevice() error {
	*o.log = append(*o.log, "lost "+o.name)
	return o.lostErr
}

func (o *fakeOwner) OnResetDevice() error {
	*o.log = append(*o.log, "reset "+o.name)
	return o.resetErr
}

func newFixture(statuses ...Status) (*Guard, *fakeDevice, []*fakeOwner, *[]string) {
	log := &[]string{}
	dev := &fakeDevice{log: log, statuses: statuses}
	g := NewGuard(dev)
	var owners []*fakeOwner
	for _, name := range []string{"tier2", "tier3", "ambient", "font"} {
		o := &fakeOwner{name: name, log: log}
		owners = append(owners, o)
		g.Register(o)
	}
	return g, dev, owners, log
}

func TestBeginFrameValid(t *testing.T) {
	g, _, _, log := newFixture(Valid)
	if !g.BeginFrame() {
		t.Fatal("valid device skipped the frame")
	}
	if len(*log) != 0 {
		t.Errorf("valid device triggered %v", *log)
	}
}

func TestBeginFrameLost(t *testing.T) {
	g, _, _, log := newFixture(Lost)
	if g.BeginFrame() {
		t.Fatal("lost device rendered a frame")
	}
	if len(*log) != 0 {
		t.Errorf("lost device triggered %v", *log)
	}
	if g.Failures() != 0 {
		t.Errorf("lost device counted as failed reset")
	}
}

func TestResetOrder(t *testing.T) {
	g, _, _, log := newFixture(NeedsReset)
	if !g.BeginFrame() {
		t.Fatal("successful reset skipped the frame")
	}
	want := []string{
		"lost tier2", "lost tier3", "lost ambient", "lost font",
		"reset",
		"reset font", "reset ambient", "reset tier3", "reset tier2",
	}
	if !reflect.DeepEqual(*log, want) {
		t.Errorf("sequence = %v, want %v", *log, want)
	}
}

func TestResetFailures(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name  string
		setup func(*fakeDevice, []*fakeOwner)
		want  []string
	}{
		{
			name:  "release fails",
			setup: func(_ *fakeDevice, o []*fakeOwner) { o[1].lostErr = boom },
			want:  []string{"lost tier2", "lost tier3"},
		},
		{
			name:  "device reset fails",
			setup: func(d *fakeDevice, _ []*fakeOwner) { d.resetErr = boom },
			want:  []string{"lost tier2", "lost tier3", "lost ambient", "lost font", "reset"},
		},
		{
			name:  "reacquire fails",
			setup: func(_ *fakeDevice, o []*fakeOwner) { o[2].resetErr = boom },
			want: []string{
				"lost tier2", "lost tier3", "lost ambient", "lost font",
				"reset", "reset font", "reset ambient",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, dev, owners, log := newFixture(NeedsReset)
			tt.setup(dev, owners)
			if g.BeginFrame() {
				t.Fatal("failed reset rendered a frame")
			}
			if !reflect.DeepEqual(*log, tt.want) {
				t.Errorf("sequence = %v, want %v", *log, tt.want)
			}
			if g.Failures() != 1 || g.ConsecutiveFailures() != 1 {
				t.Errorf("failures = %d/%d, want 1/1", g.Failures(), g.ConsecutiveFailures())
			}
		})
	}
}

func TestResetRetriedNextFrame(t *testing.T) {
	boom := errors.New("boom")
	g, dev, _, _ := newFixture(NeedsReset, NeedsReset)
	dev.resetErr = boom
	if g.BeginFrame() {
		t.Fatal("first frame rendered")
	}
	dev.resetErr = nil
	if !g.BeginFrame() {
		t.Fatal("retry skipped the frame")
	}
	if g.Failures() != 1 || g.ConsecutiveFailures() != 0 {
		t.Errorf("failures = %d/%d, want 1/0", g.Failures(), g.ConsecutiveFailures())
	}
}

func TestResetWrapsError(t *testing.T) {
	boom := errors.New("boom")
	g, dev, _, _ := newFixture()
	dev.resetErr = boom
	err := g.Reset()
	if !errors.Is(err, ErrResetFailed) || !errors.Is(err, boom) {
		t.Errorf("Reset() = %v, want wrapped ErrResetFailed and cause", err)
	}
}

package game

import (
	"slices"
	"testing"
	"time"

	"multilight/internal/config"
	"multilight/internal/input"
	"multilight/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type keyEvent struct {
	key    glfw.Key
	action glfw.Action
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name   string
		events []keyEvent
		want   []scene.Command
	}{
		{"none", nil, nil},
		{"escape", []keyEvent{{glfw.KeyEscape, glfw.Press}}, []scene.Command{scene.Quit}},
		{"space", []keyEvent{{glfw.KeySpace, glfw.Press}}, []scene.Command{scene.ToggleAnimation}},
		{
			"held toggle fires once",
			[]keyEvent{{glfw.KeyM, glfw.Press}, {glfw.KeyM, glfw.Repeat}, {glfw.KeyM, glfw.Repeat}},
			[]scene.Command{scene.TogglePassMode},
		},
		{
			"radius repeats",
			[]keyEvent{{glfw.KeyEqual, glfw.Press}, {glfw.KeyEqual, glfw.Repeat}, {glfw.KeyEqual, glfw.Repeat}},
			[]scene.Command{scene.IncreaseRadius, scene.IncreaseRadius, scene.IncreaseRadius},
		},
		{
			"keypad minus",
			[]keyEvent{{glfw.KeyKPSubtract, glfw.Press}},
			[]scene.Command{scene.DecreaseRadius},
		},
		{"v", []keyEvent{{glfw.KeyV, glfw.Press}}, []scene.Command{scene.ToggleVSync}},
		{"enter alone", []keyEvent{{glfw.KeyEnter, glfw.Press}}, nil},
		{
			"alt enter",
			[]keyEvent{{glfw.KeyLeftAlt, glfw.Press}, {glfw.KeyEnter, glfw.Press}},
			[]scene.Command{scene.ToggleFullscreen},
		},
		{
			"several keys",
			[]keyEvent{{glfw.KeyT, glfw.Press}, {glfw.KeyS, glfw.Press}, {glfw.KeyH, glfw.Press}},
			[]scene.Command{scene.ToggleHelp, scene.ToggleTier, scene.ToggleTexturing},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im := input.NewInputManager()
			for _, ev := range tt.events {
				im.HandleKeyEvent(ev.key, ev.action)
			}
			if got := Commands(im); !slices.Equal(got, tt.want) {
				t.Errorf("Commands() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandsClearedAfterPostUpdate(t *testing.T) {
	im := input.NewInputManager()
	im.HandleKeyEvent(glfw.KeyL, glfw.Press)
	if got := Commands(im); !slices.Equal(got, []scene.Command{scene.ToggleMarkers}) {
		t.Fatalf("Commands() = %v", got)
	}
	im.PostUpdate()
	if got := Commands(im); len(got) != 0 {
		t.Errorf("held key produced %v on the next frame", got)
	}
}

func TestFPSLimiterFrameTime(t *testing.T) {
	settings := config.Default()
	settings.SetFPSLimit(60)
	l := NewFPSLimiter(settings)

	if d := l.frameTime(); d != 0 {
		t.Errorf("frame time with vsync = %v, want 0", d)
	}

	settings.SetVSync(false)
	if d := l.frameTime(); d != time.Second/60 {
		t.Errorf("frame time = %v, want %v", d, time.Second/60)
	}

	settings.SetFPSLimit(0)
	if d := l.frameTime(); d != 0 {
		t.Errorf("unlimited frame time = %v, want 0", d)
	}
}

package config

import (
	"io"
	"log/slog"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	s, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	w, h := s.WindowSize()
	if w != 900 || h != 600 {
		t.Errorf("window size = %dx%d, want 900x600", w, h)
	}
	if !s.VSync() {
		t.Errorf("vsync should default to on")
	}
	if s.ForceTier2 {
		t.Errorf("force-tier2 should default to off")
	}
	if s.LogLevel != slog.LevelInfo {
		t.Errorf("log level = %v, want info", s.LogLevel)
	}
}

func TestParseFlags(t *testing.T) {
	s, err := Parse([]string{
		"-width", "1280", "-height", "720",
		"-vsync=false", "-fps-limit", "144",
		"-msaa", "6", "-anisotropy", "64",
		"-force-tier2", "-seed", "7", "-log-level", "debug",
	}, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if w, h := s.WindowSize(); w != 1280 || h != 720 {
		t.Errorf("window size = %dx%d, want 1280x720", w, h)
	}
	if s.VSync() {
		t.Errorf("vsync should be off")
	}
	if s.FPSLimit() != 144 {
		t.Errorf("fps limit = %d, want 144", s.FPSLimit())
	}
	if s.MSAASamples() != 4 {
		t.Errorf("msaa = %d, want 4 (rounded down)", s.MSAASamples())
	}
	if s.Anisotropy() != 16 {
		t.Errorf("anisotropy = %d, want 16 (clamped)", s.Anisotropy())
	}
	if !s.ForceTier2 || s.Seed != 7 {
		t.Errorf("force-tier2=%v seed=%d", s.ForceTier2, s.Seed)
	}
	if s.LogLevel != slog.LevelDebug {
		t.Errorf("log level = %v, want debug", s.LogLevel)
	}
}

func TestParseRejectsUnknownLevel(t *testing.T) {
	if _, err := Parse([]string{"-log-level", "loud"}, io.Discard); err == nil {
		t.Fatal("expected an error for an unknown log level")
	}
}

func TestSettersClamp(t *testing.T) {
	s := Default()

	s.SetWindowSize(10, 10)
	if w, h := s.WindowSize(); w != 320 || h != 240 {
		t.Errorf("window size = %dx%d, want 320x240", w, h)
	}

	s.SetFPSLimit(-5)
	if s.FPSLimit() != 0 {
		t.Errorf("fps limit = %d, want 0", s.FPSLimit())
	}

	s.SetMSAASamples(1)
	if s.MSAASamples() != 0 {
		t.Errorf("msaa = %d, want 0", s.MSAASamples())
	}

	s.SetAnisotropy(0)
	if s.Anisotropy() != 1 {
		t.Errorf("anisotropy = %d, want 1", s.Anisotropy())
	}
}

func TestDerivedLimits(t *testing.T) {
	if DollyMax != 512 {
		t.Errorf("DollyMax = %v, want 512", DollyMax)
	}
	if LightRadiusMax != 320 {
		t.Errorf("LightRadiusMax = %v, want 320", LightRadiusMax)
	}
	half := RoomHalfExtents()
	if half.X() != 128 || half.Y() != 64 || half.Z() != 128 {
		t.Errorf("half extents = %v", half)
	}
}

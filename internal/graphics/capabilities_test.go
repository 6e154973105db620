package graphics

import (
	"errors"
	"testing"
)

func TestParseGLSLVersion(t *testing.T) {
	tests := []struct {
		in           string
		major, minor int
		wantErr      bool
	}{
		{"4.10", 4, 10, false},
		{"4.60 NVIDIA", 4, 60, false},
		{"3.30 - Build 27.20.100.8681", 3, 30, false},
		{"4.1", 4, 10, false},
		{"", 0, 0, true},
		{"four", 0, 0, true},
		{"4.x", 0, 0, true},
	}
	for _, tt := range tests {
		major, minor, err := parseGLSLVersion(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseGLSLVersion(%q) err = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && (major != tt.major || minor != tt.minor) {
			t.Errorf("parseGLSLVersion(%q) = %d.%d, want %d.%d", tt.in, major, minor, tt.major, tt.minor)
		}
	}
}

func TestCapabilities(t *testing.T) {
	tests := []struct {
		name        string
		info        DeviceInfo
		tier3       bool
		unsupported bool
	}{
		{"modern", DeviceInfo{GLSLVersion: "4.10", FragmentUniformVecs: 1024, MaxTextureImageUnits: 16}, true, false},
		{"few uniforms", DeviceInfo{GLSLVersion: "4.10", FragmentUniformVecs: 48, MaxTextureImageUnits: 16}, false, false},
		{"glsl 3.30", DeviceInfo{GLSLVersion: "3.30", FragmentUniformVecs: 1024, MaxTextureImageUnits: 16}, false, false},
		{"too old", DeviceInfo{GLSLVersion: "1.50", FragmentUniformVecs: 1024, MaxTextureImageUnits: 16}, false, true},
		{"no uniforms", DeviceInfo{GLSLVersion: "4.10", FragmentUniformVecs: 16, MaxTextureImageUnits: 16}, false, true},
		{"garbage", DeviceInfo{GLSLVersion: "?"}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps, err := Capabilities(tt.info)
			if tt.unsupported {
				if !errors.Is(err, ErrUnsupported) {
					t.Fatalf("err = %v, want ErrUnsupported", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if caps.Tier3 != tt.tier3 {
				t.Errorf("Tier3 = %v, want %v", caps.Tier3, tt.tier3)
			}
		})
	}
}

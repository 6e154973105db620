// Package graphics is the OpenGL backend: shader programs, textures, the
// overlay font and the rendering device.
package graphics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"multilight/internal/technique"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrUnsupported is returned when the context cannot run even the tier-2
// lighting programs.
var ErrUnsupported = errors.New("graphics: tier-2 shading not supported")

// Uniform vectors the lighting programs need: 5 per light plus the frame
// and material parameters.
const (
	tier2UniformVectors = 2*5 + 24
	tier3UniformVectors = 8*5 + 24
)

// DeviceInfo is what the context reports about itself.
type DeviceInfo struct {
	Renderer             string
	GLSLVersion          string
	FragmentUniformVecs  int32
	MaxAnisotropy        float32
	MaxTextureImageUnits int32
}

// QueryDeviceInfo reads the current context. Requires a current GL context.
func QueryDeviceInfo() DeviceInfo {
	var info DeviceInfo
	info.Renderer = gl.GoStr(gl.GetString(gl.RENDERER))
	info.GLSLVersion = gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))
	gl.GetIntegerv(gl.MAX_FRAGMENT_UNIFORM_VECTORS, &info.FragmentUniformVecs)
	gl.GetIntegerv(gl.MAX_TEXTURE_IMAGE_UNITS, &info.MaxTextureImageUnits)
	gl.GetFloatv(maxTextureMaxAnisotropy, &info.MaxAnisotropy)
	// Without the anisotropy extension the query leaves the value untouched
	// and records GL_INVALID_ENUM.
	for gl.GetError() != gl.NO_ERROR {
	}
	if info.MaxAnisotropy < 1 {
		info.MaxAnisotropy = 1
	}
	return info
}

// Capabilities decides the available shading tiers.
func Capabilities(info DeviceInfo) (technique.Capabilities, error) {
	major, minor, err := parseGLSLVersion(info.GLSLVersion)
	if err != nil {
		return technique.Capabilities{}, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	version := major*100 + minor
	if version < 330 || info.FragmentUniformVecs < tier2UniformVectors || info.MaxTextureImageUnits < 1 {
		return technique.Capabilities{}, fmt.Errorf("%w: GLSL %d.%02d with %d fragment uniform vectors",
			ErrUnsupported, major, minor, info.FragmentUniformVecs)
	}
	return technique.Capabilities{
		Tier3: version >= 400 && info.FragmentUniformVecs >= tier3UniformVectors,
	}, nil
}

// parseGLSLVersion parses strings like "4.10", "4.60 NVIDIA" or
// "3.30 - Build 27.20".
func parseGLSLVersion(s string) (int, int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, 0, fmt.Errorf("empty GLSL version")
	}
	majorStr, minorStr, ok := strings.Cut(fields[0], ".")
	if !ok {
		return 0, 0, fmt.Errorf("malformed GLSL version %q", s)
	}
	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed GLSL version %q", s)
	}
	minor, err := strconv.Atoi(minorStr)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed GLSL version %q", s)
	}
	if len(minorStr) == 1 {
		minor *= 10
	}
	return major, minor, nil
}

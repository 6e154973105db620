package graphics

import (
	"regexp"
	"testing"
)

// divByRadius matches a division whose divisor is a bare light radius.
var divByRadius = regexp.MustCompile(`/\s*[\w\[\]\.]*radius\b`)

func TestLightingShadersGuardZeroRadius(t *testing.T) {
	for _, path := range []string{BlinnPhongTier2FragShader, BlinnPhongTier3FragShader} {
		src, err := shaderFiles.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if loc := divByRadius.FindIndex(src); loc != nil {
			t.Errorf("%s divides by an unguarded radius: %q", path, src[loc[0]:loc[1]])
		}
		if !regexp.MustCompile(`max\([\w\[\]\.]*radius, 1e-4\)`).Match(src) {
			t.Errorf("%s does not clamp the light radius", path)
		}
	}
}

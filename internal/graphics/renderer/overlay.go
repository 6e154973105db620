package renderer

import (
	"fmt"

	"multilight/internal/graphics"
	"multilight/internal/hud"
	"multilight/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Overlay text position and colour.
const (
	overlayMarginX = 4
	overlayMarginY = 2
	overlayPixels  = 14
)

var overlayColor = mgl32.Vec3{1, 1, 0}

// Overlay draws the help or status text in the top left corner.
type Overlay struct {
	font *graphics.FontRenderer
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

func (o *Overlay) Init() error {
	face, err := graphics.NewFace(overlayPixels)
	if err != nil {
		return fmt.Errorf("overlay font: %w", err)
	}
	atlas := graphics.RasterizeAtlas(face)
	_ = face.Close()

	fr, err := graphics.NewFontRenderer(atlas)
	if err != nil {
		return fmt.Errorf("overlay font: %w", err)
	}
	o.font = fr
	return nil
}

func (o *Overlay) Render(ctx RenderContext) {
	defer profiling.Track("renderer.Overlay")()

	lines := hud.Lines(ctx.Scene.Help, ctx.Status)
	step := o.font.LineHeight()
	o.font.RenderLines(lines, overlayMarginX, overlayMarginY+step, step, 1, overlayColor)
}

// OnLostDevice releases the font's GL objects.
func (o *Overlay) OnLostDevice() error {
	return o.font.OnLostDevice()
}

// OnResetDevice recreates the font's GL objects.
func (o *Overlay) OnResetDevice() error {
	return o.font.OnResetDevice()
}

func (o *Overlay) Dispose() {
	if o.font != nil {
		o.font.Dispose()
	}
}

func (o *Overlay) SetViewport(width, height int) {
	o.font.SetViewport(float32(width), float32(height))
}

package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontCharacter describes a single character's placement and metrics within the atlas
type FontCharacter struct {
	// Pixel coordinates of the glyph in the atlas texture (top-left origin)
	AtlasX float32
	AtlasY float32
	// Glyph bitmap size in pixels
	Width  float32
	Height float32
	// Bearing (offset from baseline) in pixels
	BearingX float32
	BearingY float32
	// Advance in pixels
	Advance int
}

// FontAtlas is a baked glyph set. Image is kept so the texture can be
// uploaded again after a device reset.
type FontAtlas struct {
	Image      *image.Alpha
	Characters map[rune]FontCharacter
	LineHeight int
	TextureID  uint32
}

const atlasWidth = 512

// NewFace opens the bundled Go Regular face at the given pixel size.
func NewFace(pixels float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: pixels, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// RasterizeAtlas bakes the printable ASCII range of face into a single
// channel image. The height is rounded up to a power of two.
func RasterizeAtlas(face font.Face) *FontAtlas {
	const padding = 1

	type glyph struct {
		r       rune
		dr      image.Rectangle
		mask    image.Image
		maskp   image.Point
		advance fixed.Int26_6
	}
	var glyphs []glyph
	for r := rune(32); r <= 126; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, glyph{r, dr, mask, maskp, advance})
	}

	// First pass: row packing to size the atlas
	offsetX, offsetY, rowHeight := 0, 0, 0
	for _, g := range glyphs {
		w, h := g.dr.Dx(), g.dr.Dy()
		if w == 0 || h == 0 {
			continue
		}
		if offsetX+w > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}
		offsetX += w + padding
		rowHeight = max(rowHeight, h)
	}
	atlasHeight := nextPowerOfTwo(offsetY + rowHeight)

	atlas := &FontAtlas{
		Image:      image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasHeight)),
		Characters: make(map[rune]FontCharacter, len(glyphs)),
		LineHeight: face.Metrics().Height.Ceil(),
	}

	// Second pass: same packing, copying glyph coverage into the atlas
	offsetX, offsetY, rowHeight = 0, 0, 0
	for _, g := range glyphs {
		w, h := g.dr.Dx(), g.dr.Dy()
		fc := FontCharacter{
			BearingX: float32(g.dr.Min.X),
			BearingY: float32(-g.dr.Min.Y),
			Advance:  int(math.Round(float64(g.advance) / 64.0)),
		}
		if w == 0 || h == 0 {
			atlas.Characters[g.r] = fc
			continue
		}
		if offsetX+w > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}
		draw.Draw(atlas.Image, image.Rect(offsetX, offsetY, offsetX+w, offsetY+h), g.mask, g.maskp, draw.Src)

		fc.AtlasX = float32(offsetX)
		fc.AtlasY = float32(offsetY)
		fc.Width = float32(w)
		fc.Height = float32(h)
		atlas.Characters[g.r] = fc

		offsetX += w + padding
		rowHeight = max(rowHeight, h)
	}
	return atlas
}

// Upload creates the atlas texture as GL_RED.
func (a *FontAtlas) Upload() {
	size := a.Image.Rect.Size()
	gl.GenTextures(1, &a.TextureID)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, a.TextureID)
	// Tight byte alignment for single-channel upload
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(size.X), int32(size.Y), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(a.Image.Pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Release deletes the atlas texture.
func (a *FontAtlas) Release() {
	if a.TextureID != 0 {
		gl.DeleteTextures(1, &a.TextureID)
		a.TextureID = 0
	}
}

// FontRenderer renders ASCII text using a prebuilt atlas.
type FontRenderer struct {
	atlas      *FontAtlas
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewFontRenderer uploads the atlas and creates the vertex buffers.
func NewFontRenderer(atlas *FontAtlas) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Characters) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewBuiltinShader(FontVertShader, FontFragShader)
	if err != nil {
		return nil, err
	}
	fr := &FontRenderer{atlas: atlas, shader: shader}
	fr.acquire()
	return fr, nil
}

func (fr *FontRenderer) acquire() {
	fr.atlas.Upload()

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (fr *FontRenderer) release() {
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
		fr.vbo = 0
	}
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
		fr.vao = 0
	}
	fr.atlas.Release()
}

// OnLostDevice releases the atlas texture and vertex buffers.
func (fr *FontRenderer) OnLostDevice() error {
	fr.release()
	return fr.shader.OnLostDevice()
}

// OnResetDevice recreates what OnLostDevice released.
func (fr *FontRenderer) OnResetDevice() error {
	if err := fr.shader.OnResetDevice(); err != nil {
		return err
	}
	fr.acquire()
	return nil
}

// SetViewport sets the pixel space text is laid out in.
func (fr *FontRenderer) SetViewport(width, height float32) {
	fr.projection = mgl32.Ortho(0, width, height, 0, -1, 1)
}

// LineHeight is the distance between baselines in pixels at scale 1.
func (fr *FontRenderer) LineHeight() float32 {
	return float32(fr.atlas.LineHeight)
}

// RenderLines draws multiple lines of text in one draw call. The first
// baseline is at (x, yStart); empty lines only advance the pen.
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	vertices := make([]float32, 0, 64*6*4)
	y := yStart
	for _, line := range lines {
		vertices = fr.atlas.appendVertices(vertices, line, x, y, scale)
		y += lineStep
	}
	if len(vertices) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVec3("textColor", color)
	fr.shader.SetMatrix("projection", fr.projection)
	fr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.atlas.TextureID)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)

	// Orphan the buffer to avoid stalls on dynamic updates
	size := len(vertices) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/4))

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

// Measure returns the width and height in pixels the text will occupy.
func (fr *FontRenderer) Measure(text string, scale float32) (float32, float32) {
	return fr.atlas.Measure(text, scale)
}

// Measure returns the width and height in pixels the text will occupy.
func (a *FontAtlas) Measure(text string, scale float32) (float32, float32) {
	var width, maxH float32
	for _, r := range text {
		fc, ok := a.Characters[r]
		if !ok {
			fc = a.Characters[' ']
		}
		width += float32(fc.Advance) * scale
		maxH = max(maxH, fc.Height*scale)
	}
	return width, maxH
}

// appendVertices adds two triangles per visible glyph: xy in pixels, uv in
// atlas space.
func (a *FontAtlas) appendVertices(vertices []float32, text string, x, y, scale float32) []float32 {
	atlasW := float32(a.Image.Rect.Dx())
	atlasH := float32(a.Image.Rect.Dy())
	for _, r := range text {
		fc, ok := a.Characters[r]
		if !ok {
			x += float32(a.Characters[' '].Advance) * scale
			continue
		}
		if fc.Width > 0 && fc.Height > 0 {
			xPos := x + fc.BearingX*scale
			yPos := y - fc.BearingY*scale
			w := fc.Width * scale
			h := fc.Height * scale

			u0 := fc.AtlasX / atlasW
			v0 := fc.AtlasY / atlasH
			u1 := u0 + fc.Width/atlasW
			v1 := v0 + fc.Height/atlasH

			vertices = append(vertices,
				xPos, yPos+h, u0, v1,
				xPos, yPos, u0, v0,
				xPos+w, yPos, u1, v0,

				xPos, yPos+h, u0, v1,
				xPos+w, yPos, u1, v0,
				xPos+w, yPos+h, u1, v1,
			)
		}
		x += float32(fc.Advance) * scale
	}
	return vertices
}

// Dispose releases every GL object.
func (fr *FontRenderer) Dispose() {
	fr.release()
	fr.shader.Delete()
}

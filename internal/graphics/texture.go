package graphics

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"multilight/internal/logging"
	"multilight/internal/room"
	"multilight/internal/shading"

	"github.com/go-gl/gl/v4.1-core/gl"
	xdraw "golang.org/x/image/draw"
)

// EXT_texture_filter_anisotropic, core since GL 4.6.
const (
	textureMaxAnisotropy    = 0x84FE
	maxTextureMaxAnisotropy = 0x84FF
)

// MaxTextureSize bounds the size textures are resampled to.
const MaxTextureSize = 1024

// ColorMapFiles are the colour maps looked up in the texture directory.
var ColorMapFiles = [room.SurfaceCount]string{
	room.Walls:   "brick_color_map.jpg",
	room.Ceiling: "wood_color_map.jpg",
	room.Floor:   "stone_color_map.jpg",
}

// TextureSet holds the room colour maps and the white null texture bound
// when texturing is disabled.
type TextureSet struct {
	ColorMaps [room.SurfaceCount]shading.TextureID
	Null      shading.TextureID
}

// LoadTextureSet loads the colour maps from dir. A missing file is replaced
// by a generated pattern; a file that cannot be decoded is an error.
func LoadTextureSet(dir string, anisotropy float32) (*TextureSet, error) {
	ts := &TextureSet{}
	for s := room.Walls; s < room.SurfaceCount; s++ {
		path := filepath.Join(dir, ColorMapFiles[s])
		img, err := LoadImage(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logging.Logger().Info("texture not found, using generated pattern", "path", path, "surface", s)
			img = Procedural(s, 256)
		case err != nil:
			ts.Delete()
			return nil, fmt.Errorf("load %s texture: %w", s, err)
		}
		ts.ColorMaps[s] = shading.TextureID(UploadTexture(PowerOfTwo(img, MaxTextureSize), anisotropy))
	}
	ts.Null = shading.TextureID(NewNullTexture())
	return ts, nil
}

// Delete releases every texture in the set.
func (ts *TextureSet) Delete() {
	for i, id := range ts.ColorMaps {
		if id != 0 {
			tex := uint32(id)
			gl.DeleteTextures(1, &tex)
			ts.ColorMaps[i] = 0
		}
	}
	if ts.Null != 0 {
		tex := uint32(ts.Null)
		gl.DeleteTextures(1, &tex)
		ts.Null = 0
	}
}

// LoadImage decodes a PNG or JPEG file.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// PowerOfTwo returns img as RGBA with power-of-two sides no larger than
// limit, resampling when the size has to change.
func PowerOfTwo(img image.Image, limit int) *image.RGBA {
	b := img.Bounds()
	w := min(nextPowerOfTwo(b.Dx()), limit)
	h := min(nextPowerOfTwo(b.Dy()), limit)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Procedural generates a stand-in colour map for a room surface: bricks for
// the walls, planks for the ceiling and flagstones for the floor.
func Procedural(s room.Surface, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			u := float64(x) / float64(size)
			v := float64(y) / float64(size)
			var c color.RGBA
			switch s {
			case room.Walls:
				c = brick(u, v)
			case room.Ceiling:
				c = wood(u, v)
			default:
				c = stone(u, v)
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func brick(u, v float64) color.RGBA {
	const rows, cols, mortar = 8.0, 4.0, 0.06
	row := math.Floor(v * rows)
	bu := u*cols + 0.5*math.Mod(row, 2)
	fu := bu - math.Floor(bu)
	fv := v*rows - row
	if fu < mortar || fv < mortar*2 {
		return color.RGBA{190, 185, 175, 255}
	}
	shade := 0.85 + 0.15*hash(math.Floor(bu), row)
	return color.RGBA{uint8(165 * shade), uint8(70 * shade), uint8(50 * shade), 255}
}

func wood(u, v float64) color.RGBA {
	const planks = 6.0
	plank := math.Floor(v * planks)
	grain := 0.5 + 0.5*math.Sin((u*40+hash(plank, 1)*10)+3*math.Sin(v*planks*math.Pi))
	if fv := v*planks - plank; fv < 0.03 {
		grain = 0
	}
	shade := 0.7 + 0.3*grain
	return color.RGBA{uint8(150 * shade), uint8(105 * shade), uint8(65 * shade), 255}
}

func stone(u, v float64) color.RGBA {
	const tiles, grout = 4.0, 0.03
	tu, tv := u*tiles, v*tiles
	fu, fv := tu-math.Floor(tu), tv-math.Floor(tv)
	if fu < grout || fv < grout {
		return color.RGBA{60, 60, 60, 255}
	}
	shade := 0.75 + 0.25*hash(math.Floor(tu), math.Floor(tv))
	g := uint8(140 * shade)
	return color.RGBA{g, g, uint8(float64(g) * 0.95), 255}
}

// hash maps a cell to a stable value in [0, 1).
func hash(a, b float64) float64 {
	h := math.Sin(a*127.1+b*311.7) * 43758.5453
	return h - math.Floor(h)
}

// UploadTexture creates a mipmapped, repeating 2D texture. anisotropy <= 1
// disables anisotropic filtering.
func UploadTexture(img *image.RGBA, anisotropy float32) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	if anisotropy > 1 {
		gl.TexParameterf(gl.TEXTURE_2D, textureMaxAnisotropy, anisotropy)
	}

	size := img.Rect.Size()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(size.X), int32(size.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

// NewNullTexture creates a 1x1 opaque white texture.
func NewNullTexture() uint32 {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})
	return UploadTexture(img, 1)
}

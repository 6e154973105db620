// Package room builds the geometry drawn by the renderer: the inside of the
// room and the sphere used as a light marker.
package room

import "multilight/internal/config"

// Vertex is one room vertex: position, texture coordinate and normal.
type Vertex struct {
	Pos    [3]float32
	UV     [2]float32
	Normal [3]float32
}

// FloatsPerVertex is the size of Vertex in float32s.
const FloatsPerVertex = 8

// Surface is a contiguous range of triangles sharing a material and texture.
type Surface int

const (
	Walls Surface = iota
	Ceiling
	Floor
	SurfaceCount
)

func (s Surface) String() string {
	switch s {
	case Walls:
		return "walls"
	case Ceiling:
		return "ceiling"
	case Floor:
		return "floor"
	}
	return "unknown"
}

// Range is a vertex range of a triangle list.
type Range struct {
	First int
	Count int
}

var ranges = [SurfaceCount]Range{
	Walls:   {First: 0, Count: 24},
	Ceiling: {First: 24, Count: 6},
	Floor:   {First: 30, Count: 6},
}

// DrawRange returns the vertices of s.
func DrawRange(s Surface) Range {
	return ranges[s]
}

// VertexCount is the number of vertices in the room.
const VertexCount = 36

// Vertices returns the room as a triangle list. Normals point into the room
// and triangles are wound clockwise when seen from inside.
func Vertices() [VertexCount]Vertex {
	const (
		x = config.RoomSizeX * 0.5
		y = config.RoomSizeY * 0.5
		z = config.RoomSizeZ * 0.5

		wu = config.RoomWallTileU
		wv = config.RoomWallTileV
		cu = config.RoomCeilingTileU
		cv = config.RoomCeilingTileV
		fu = config.RoomFloorTileU
		fv = config.RoomFloorTileV
	)

	quad := func(p [4][3]float32, u, v float32, n [3]float32) [6]Vertex {
		uv := [4][2]float32{{0, 0}, {u, 0}, {u, v}, {0, v}}
		vert := func(i int) Vertex { return Vertex{Pos: p[i], UV: uv[i], Normal: n} }
		return [6]Vertex{vert(0), vert(1), vert(2), vert(2), vert(3), vert(0)}
	}

	faces := [6][6]Vertex{
		// -Z wall
		quad([4][3]float32{{x, y, -z}, {-x, y, -z}, {-x, -y, -z}, {x, -y, -z}}, wu, wv, [3]float32{0, 0, 1}),
		// +Z wall
		quad([4][3]float32{{-x, y, z}, {x, y, z}, {x, -y, z}, {-x, -y, z}}, wu, wv, [3]float32{0, 0, -1}),
		// -X wall
		quad([4][3]float32{{-x, y, -z}, {-x, y, z}, {-x, -y, z}, {-x, -y, -z}}, wu, wv, [3]float32{1, 0, 0}),
		// +X wall
		quad([4][3]float32{{x, y, z}, {x, y, -z}, {x, -y, -z}, {x, -y, z}}, wu, wv, [3]float32{-1, 0, 0}),
		// ceiling
		quad([4][3]float32{{-x, y, -z}, {x, y, -z}, {x, y, z}, {-x, y, z}}, cu, cv, [3]float32{0, -1, 0}),
		// floor
		quad([4][3]float32{{-x, -y, z}, {x, -y, z}, {x, -y, -z}, {-x, -y, -z}}, fu, fv, [3]float32{0, 1, 0}),
	}

	var out [VertexCount]Vertex
	for i, f := range faces {
		copy(out[i*6:], f[:])
	}
	return out
}

// Flatten packs vertices into an interleaved float buffer.
func Flatten(vs []Vertex) []float32 {
	out := make([]float32, 0, len(vs)*FloatsPerVertex)
	for _, v := range vs {
		out = append(out, v.Pos[:]...)
		out = append(out, v.UV[:]...)
		out = append(out, v.Normal[:]...)
	}
	return out
}

package room

import "math"

// Mesh is an indexed triangle mesh with positions and normals.
type Mesh struct {
	Positions []float32 // xyz
	Normals   []float32 // xyz
	Indices   []uint16
}

// Sphere builds a UV sphere centred on the origin. Triangles are wound
// clockwise when seen from outside. slices and stacks are clamped to at
// least 3 and 2.
func Sphere(radius float32, slices, stacks int) Mesh {
	slices = max(slices, 3)
	stacks = max(stacks, 2)

	var m Mesh
	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			n := [3]float32{
				float32(math.Sin(phi) * math.Cos(theta)),
				float32(math.Cos(phi)),
				float32(math.Sin(phi) * math.Sin(theta)),
			}
			m.Normals = append(m.Normals, n[0], n[1], n[2])
			m.Positions = append(m.Positions, n[0]*radius, n[1]*radius, n[2]*radius)
		}
	}

	row := slices + 1
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint16(i*row + j)
			b := a + 1
			c := a + uint16(row)
			d := c + 1
			m.Indices = append(m.Indices, a, b, d, a, d, c)
		}
	}
	return m
}

// VertexCount is the number of vertices in the mesh.
func (m Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

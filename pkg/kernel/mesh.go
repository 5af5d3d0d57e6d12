package kernel

import "math"

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	Name     string    `json:"name"`     // space or boundary condition the mesh came from
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// AddTriangle appends a triangle with a flat normal.
func (m *Mesh) AddTriangle(a, b, c, n [3]float32) {
	base := uint32(m.VertexCount())
	for _, v := range [][3]float32{a, b, c} {
		m.Vertices = append(m.Vertices, v[0], v[1], v[2])
		m.Normals = append(m.Normals, n[0], n[1], n[2])
	}
	m.Indices = append(m.Indices, base, base+1, base+2)
}

// Triangle returns the corners of triangle i.
func (m *Mesh) Triangle(i int) [3][3]float32 {
	var t [3][3]float32
	for j := 0; j < 3; j++ {
		k := int(m.Indices[3*i+j]) * 3
		t[j] = [3]float32{m.Vertices[k], m.Vertices[k+1], m.Vertices[k+2]}
	}
	return t
}

// Area returns the total triangle area.
func (m *Mesh) Area() float64 {
	a := 0.0
	for i := 0; i < m.TriangleCount(); i++ {
		t := m.Triangle(i)
		var u, v [3]float64
		for j := 0; j < 3; j++ {
			u[j] = float64(t[1][j] - t[0][j])
			v[j] = float64(t[2][j] - t[0][j])
		}
		cx := u[1]*v[2] - u[2]*v[1]
		cy := u[2]*v[0] - u[0]*v[2]
		cz := u[0]*v[1] - u[1]*v[0]
		a += 0.5 * math.Sqrt(cx*cx+cy*cy+cz*cz)
	}
	return a
}

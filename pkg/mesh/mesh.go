// Package mesh provides the triangle-mesh abstraction consumed by the
// rigging pipeline. It is a plain data carrier: loading and simplification
// are the responsibility of the caller.
package mesh

import "github.com/Faultbox/rigkit/pkg/geom"

// Triangle is an ordered triple of vertex indices.
type Triangle [3]int

// Mesh is an indexed triangle mesh. Spatial structures built over a mesh
// hold it by reference; it must not be mutated while they are in use.
type Mesh struct {
	Vertices  []geom.Vec3
	Triangles []Triangle

	// Normals optionally holds one normal per vertex. It is informational
	// for consumers; spatial queries derive their own face normals.
	Normals []geom.Vec3
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(p geom.Vec3) int {
	m.Vertices = append(m.Vertices, p)
	return len(m.Vertices) - 1
}

// AddTriangle appends a triangle over existing vertex indices.
func (m *Mesh) AddTriangle(a, b, c int) {
	m.Triangles = append(m.Triangles, Triangle{a, b, c})
}

// FaceNormal returns the unnormalized cross-product normal of triangle i.
// A degenerate triangle yields the zero vector.
func (m *Mesh) FaceNormal(i int) geom.Vec3 {
	tri := m.Triangles[i]
	v0 := m.Vertices[tri[0]]
	e1 := m.Vertices[tri[1]].Sub(v0)
	e2 := m.Vertices[tri[2]].Sub(v0)
	return e1.Cross(e2)
}

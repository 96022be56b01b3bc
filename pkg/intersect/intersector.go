// Package intersect implements the directional mesh intersector: a spatial
// index over a mesh's projection onto the plane orthogonal to a fixed
// direction, answering "where does the surface cross the ray through P in
// that direction" queries.
package intersect

import (
	"math"
	"sort"

	"github.com/Faultbox/rigkit/pkg/geom"
	"github.com/Faultbox/rigkit/pkg/mesh"
)

const (
	// targetTrisPerCell sizes the grid for a small expected triangle
	// population per cell. Tuning only, not correctness.
	targetTrisPerCell = 2
	maxCellsPerSide   = 256

	// parallelEps excludes triangles whose plane is parallel to the ray.
	parallelEps = 1e-12
	// dedupeEps merges hits produced twice by triangles sharing an edge.
	dedupeEps = 1e-8
)

// Intersector answers ray/mesh queries along one fixed direction. It holds
// the mesh by reference and is immutable after New, so it is safe for
// concurrent readers as long as the mesh is not mutated.
type Intersector struct {
	mesh *mesh.Mesh
	dir  geom.Vec3

	v1, v2 geom.Vec3 // projection basis, orthonormal and orthogonal to dir

	points   []geom.Vec2 // per-vertex basis coordinates
	sNormals []geom.Vec3 // per-triangle normals scaled by 1/(n.dir); zero = excluded
	bounds   geom.Rect2  // of the projected mesh

	perSide      int
	cellW, cellH float64
	cells        [][]int // triangle indices per grid cell, row-major
}

// New builds an intersector over m for the given direction. dir is
// normalized; it must be nonzero. The mesh must outlive the intersector
// and must not be mutated while it is in use.
func New(m *mesh.Mesh, dir geom.Vec3) *Intersector {
	it := &Intersector{mesh: m, dir: dir.Normalize()}
	it.init()
	return it
}

// Dir returns the fixed query direction.
func (it *Intersector) Dir() geom.Vec3 {
	return it.dir
}

func (it *Intersector) init() {
	it.v1, it.v2 = basis(it.dir)

	it.points = make([]geom.Vec2, len(it.mesh.Vertices))
	for i, v := range it.mesh.Vertices {
		it.points[i] = it.project(v)
	}

	// Scale each face normal by 1/(n.dir) so the signed ray parameter of
	// the plane crossing is a single dot product at query time.
	it.sNormals = make([]geom.Vec3, len(it.mesh.Triangles))
	for i := range it.mesh.Triangles {
		n := it.mesh.FaceNormal(i)
		d := n.Dot(it.dir)
		if math.Abs(d) < parallelEps {
			continue // degenerate or parallel to the ray, excluded
		}
		it.sNormals[i] = n.Scale(1 / d)
	}

	if len(it.points) == 0 {
		it.perSide = 1
		it.cellW, it.cellH = 1, 1
		it.cells = make([][]int, 1)
		return
	}

	it.bounds = geom.NewRect2(it.points[0])
	for _, p := range it.points[1:] {
		it.bounds = it.bounds.Expand(p)
	}

	it.perSide = int(math.Ceil(math.Sqrt(float64(len(it.mesh.Triangles)) / targetTrisPerCell)))
	if it.perSide < 1 {
		it.perSide = 1
	}
	if it.perSide > maxCellsPerSide {
		it.perSide = maxCellsPerSide
	}

	size := it.bounds.Size()
	it.cellW = size.X / float64(it.perSide)
	it.cellH = size.Y / float64(it.perSide)
	if it.cellW <= 0 {
		it.cellW = 1
	}
	if it.cellH <= 0 {
		it.cellH = 1
	}

	// Bin each triangle into every cell its projected bounding box
	// overlaps; a triangle may land in several cells.
	it.cells = make([][]int, it.perSide*it.perSide)
	for i, tri := range it.mesh.Triangles {
		box := geom.NewRect2(it.points[tri[0]])
		box = box.Expand(it.points[tri[1]])
		box = box.Expand(it.points[tri[2]])

		x0, y0 := it.cellIndex(box.Min)
		x1, y1 := it.cellIndex(box.Max)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				it.cells[y*it.perSide+x] = append(it.cells[y*it.perSide+x], i)
			}
		}
	}
}

// basis returns a deterministic orthonormal pair orthogonal to dir,
// built from the world axis least aligned with it.
func basis(dir geom.Vec3) (geom.Vec3, geom.Vec3) {
	axis := geom.Vec3{X: 1}
	best := math.Abs(dir.X)
	if a := math.Abs(dir.Y); a < best {
		axis, best = geom.Vec3{Y: 1}, a
	}
	if a := math.Abs(dir.Z); a < best {
		axis = geom.Vec3{Z: 1}
	}
	v1 := dir.Cross(axis).Normalize()
	v2 := dir.Cross(v1)
	return v1, v2
}

func (it *Intersector) project(v geom.Vec3) geom.Vec2 {
	return geom.Vec2{X: v.Dot(it.v1), Y: v.Dot(it.v2)}
}

// cellIndex maps a basis-space point to grid cell coordinates, clamped to
// the valid range.
func (it *Intersector) cellIndex(p geom.Vec2) (x, y int) {
	x = int((p.X - it.bounds.Min.X) / it.cellW)
	y = int((p.Y - it.bounds.Min.Y) / it.cellH)
	if x < 0 {
		x = 0
	}
	if x >= it.perSide {
		x = it.perSide - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= it.perSide {
		y = it.perSide - 1
	}
	return x, y
}

// Intersect returns the points where the line through p along the fixed
// direction crosses the mesh surface, ordered by signed distance along the
// direction. A point projecting outside the mesh's projected bounds yields
// no intersections.
func (it *Intersector) Intersect(p geom.Vec3) []geom.Vec3 {
	pts, _ := it.intersect(p, false)
	return pts
}

// IntersectIndices is Intersect, additionally returning the index of the
// triangle responsible for each crossing, in the same order.
func (it *Intersector) IntersectIndices(p geom.Vec3) ([]geom.Vec3, []int) {
	return it.intersect(p, true)
}

type crossing struct {
	t   float64
	tri int
}

func (it *Intersector) intersect(p geom.Vec3, wantIndices bool) ([]geom.Vec3, []int) {
	if len(it.cells) == 0 {
		return nil, nil
	}
	pp := it.project(p)
	if !it.bounds.Contains(pp) {
		return nil, nil
	}

	x, y := it.cellIndex(pp)
	var hits []crossing
	for _, ti := range it.cells[y*it.perSide+x] {
		sn := it.sNormals[ti]
		if sn == (geom.Vec3{}) {
			continue
		}
		tri := it.mesh.Triangles[ti]
		if !pointInTriangle(pp, it.points[tri[0]], it.points[tri[1]], it.points[tri[2]]) {
			continue
		}
		t := it.mesh.Vertices[tri[0]].Sub(p).Dot(sn)
		hits = append(hits, crossing{t: t, tri: ti})
	}
	if len(hits) == 0 {
		return nil, nil
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].t < hits[j].t })

	// Triangles sharing an edge both report a crossing on it; keep one.
	out := hits[:1]
	for _, h := range hits[1:] {
		if h.t-out[len(out)-1].t > dedupeEps {
			out = append(out, h)
		}
	}

	points := make([]geom.Vec3, len(out))
	for i, h := range out {
		points[i] = p.Add(it.dir.Scale(h.t))
	}
	if !wantIndices {
		return points, nil
	}
	indices := make([]int, len(out))
	for i, h := range out {
		indices[i] = h.tri
	}
	return points, indices
}

// pointInTriangle reports whether p lies in the triangle abc, whatever its
// winding. Edge and vertex points count as inside.
func pointInTriangle(p, a, b, c geom.Vec2) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

package intersect

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/Faultbox/rigkit/pkg/geom"
	"github.com/Faultbox/rigkit/pkg/mesh"
)

const tol = 1e-9

// cube returns a closed unit cube centered at the origin.
func cube() *mesh.Mesh {
	m := mesh.New()
	for _, v := range []geom.Vec3{
		{X: -0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: 0.5, Z: -0.5},
		{X: -0.5, Y: 0.5, Z: -0.5},
		{X: -0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: 0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: 0.5},
	} {
		m.AddVertex(v)
	}
	faces := [][3]int{
		{0, 2, 1}, {0, 3, 2}, // z = -0.5
		{4, 5, 6}, {4, 6, 7}, // z = +0.5
		{0, 1, 5}, {0, 5, 4}, // y = -0.5
		{3, 7, 6}, {3, 6, 2}, // y = +0.5
		{0, 4, 7}, {0, 7, 3}, // x = -0.5
		{1, 2, 6}, {1, 6, 5}, // x = +0.5
	}
	for _, f := range faces {
		m.AddTriangle(f[0], f[1], f[2])
	}
	return m
}

// sideCounts splits crossings by signed distance along the direction.
func sideCounts(it *Intersector, p geom.Vec3, pts []geom.Vec3) (ahead, behind int) {
	for _, pt := range pts {
		if pt.Sub(p).Dot(it.Dir()) > 0 {
			ahead++
		} else {
			behind++
		}
	}
	return ahead, behind
}

func TestDirNormalized(t *testing.T) {
	it := New(cube(), geom.Vec3{Z: 5})
	if got := it.Dir(); got != (geom.Vec3{Z: 1}) {
		t.Errorf("Dir() = %v, want (0 0 1)", got)
	}
}

func TestIntersectInsideCube(t *testing.T) {
	it := New(cube(), geom.Vec3{Z: 1})
	p := geom.Vec3{X: 0.1, Y: 0.05}

	pts := it.Intersect(p)
	if len(pts) != 2 {
		t.Fatalf("Intersect() returned %d points, want 2", len(pts))
	}

	// Crossings are at the cube faces, on the ray through p.
	for _, pt := range pts {
		if !scalar.EqualWithinAbs(math.Abs(pt.Z), 0.5, tol) {
			t.Errorf("crossing at z = %v, want ±0.5", pt.Z)
		}
		if !scalar.EqualWithinAbs(pt.X, p.X, tol) || !scalar.EqualWithinAbs(pt.Y, p.Y, tol) {
			t.Errorf("crossing %v left the ray through %v", pt, p)
		}
	}

	// Inside a convex closed mesh: odd crossings on each side.
	ahead, behind := sideCounts(it, p, pts)
	if ahead != 1 || behind != 1 {
		t.Errorf("crossings ahead/behind = %d/%d, want 1/1", ahead, behind)
	}

	// Ordered by signed distance along the direction.
	if pts[0].Z > pts[1].Z {
		t.Errorf("crossings out of order: %v", pts)
	}
}

func TestIntersectOutsideBounds(t *testing.T) {
	it := New(cube(), geom.Vec3{Z: 1})
	if pts := it.Intersect(geom.Vec3{X: 2}); pts != nil {
		t.Errorf("Intersect() outside projected bounds = %v, want nil", pts)
	}
}

func TestIntersectOutsideAlongDir(t *testing.T) {
	it := New(cube(), geom.Vec3{Z: 1})
	p := geom.Vec3{X: 0.1, Y: 0.05, Z: 3}

	pts := it.Intersect(p)
	if len(pts) != 2 {
		t.Fatalf("Intersect() returned %d points, want 2", len(pts))
	}
	// Outside a convex closed mesh: an even number ahead (here zero).
	ahead, behind := sideCounts(it, p, pts)
	if ahead != 0 || behind != 2 {
		t.Errorf("crossings ahead/behind = %d/%d, want 0/2", ahead, behind)
	}
}

func TestIntersectDiagonalDirection(t *testing.T) {
	it := New(cube(), geom.Vec3{X: 0.3, Y: 1, Z: 0.2}.Normalize())
	p := geom.Vec3{X: 0.05, Y: -0.1, Z: 0.08}

	pts := it.Intersect(p)
	if len(pts) != 2 {
		t.Fatalf("Intersect() returned %d points, want 2", len(pts))
	}
	ahead, behind := sideCounts(it, p, pts)
	if ahead != 1 || behind != 1 {
		t.Errorf("crossings ahead/behind = %d/%d, want 1/1", ahead, behind)
	}
	for _, pt := range pts {
		// On the cube surface: at least one coordinate at ±0.5.
		m := math.Max(math.Abs(pt.X), math.Max(math.Abs(pt.Y), math.Abs(pt.Z)))
		if !scalar.EqualWithinAbs(m, 0.5, tol) {
			t.Errorf("crossing %v not on the cube surface", pt)
		}
	}
}

func TestIntersectIndices(t *testing.T) {
	m := cube()
	it := New(m, geom.Vec3{Z: 1})
	p := geom.Vec3{X: 0.1, Y: 0.05}

	pts, idx := it.IntersectIndices(p)
	if len(idx) != len(pts) {
		t.Fatalf("len(indices) = %d, want %d", len(idx), len(pts))
	}
	for k, pt := range pts {
		tri := m.Triangles[idx[k]]
		n := m.FaceNormal(idx[k])
		d := m.Vertices[tri[0]].Sub(pt).Dot(n)
		if math.Abs(d) > tol {
			t.Errorf("crossing %v not on plane of triangle %d", pt, idx[k])
		}
	}
}

func TestIntersectDedupesSharedEdges(t *testing.T) {
	// Two unit squares stacked along z, each of two triangles. A query on
	// the shared diagonal would hit both triangles of a square at the
	// same parameter; one crossing per plane must remain.
	m := mesh.New()
	for _, z := range []float64{0, 1} {
		a := m.AddVertex(geom.Vec3{X: 0, Y: 0, Z: z})
		b := m.AddVertex(geom.Vec3{X: 1, Y: 0, Z: z})
		c := m.AddVertex(geom.Vec3{X: 1, Y: 1, Z: z})
		d := m.AddVertex(geom.Vec3{X: 0, Y: 1, Z: z})
		m.AddTriangle(a, b, c)
		m.AddTriangle(a, c, d)
	}
	it := New(m, geom.Vec3{Z: 1})

	p := geom.Vec3{X: 0.5, Y: 0.5, Z: -2} // projects onto both diagonals
	pts := it.Intersect(p)
	if len(pts) != 2 {
		t.Fatalf("Intersect() returned %d points, want 2 after dedupe", len(pts))
	}
	if !scalar.EqualWithinAbs(pts[0].Z, 0, tol) || !scalar.EqualWithinAbs(pts[1].Z, 1, tol) {
		t.Errorf("crossings = %v, want z = 0 then z = 1", pts)
	}
}

func TestIntersectExcludesParallelTriangles(t *testing.T) {
	m := mesh.New()
	a := m.AddVertex(geom.Vec3{X: 0, Y: 0, Z: 0})
	b := m.AddVertex(geom.Vec3{X: 1, Y: 0, Z: 0})
	c := m.AddVertex(geom.Vec3{X: 0, Y: 0, Z: 1})
	m.AddTriangle(a, b, c) // lies in the y=0 plane, parallel to +z

	it := New(m, geom.Vec3{Z: 1})
	if pts := it.Intersect(geom.Vec3{X: 0.2, Y: 0, Z: 0.5}); pts != nil {
		t.Errorf("Intersect() through a parallel triangle = %v, want nil", pts)
	}
}

func TestIntersectEmptyMesh(t *testing.T) {
	it := New(mesh.New(), geom.Vec3{Z: 1})
	if pts := it.Intersect(geom.Vec3{}); pts != nil {
		t.Errorf("Intersect() on empty mesh = %v, want nil", pts)
	}
}

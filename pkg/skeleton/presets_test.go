package skeleton

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestPresetShapes(t *testing.T) {
	cases := []struct {
		name       string
		build      func() *Skeleton
		full, comp int
	}{
		{"human", Human, 18, 7},
		{"quad", Quad, 18, 8},
		{"horse", Horse, 20, 8},
		{"centaur", Centaur, 25, 11},
	}
	for _, c := range cases {
		s := c.build()
		if got := s.FullCount(); got != c.full {
			t.Errorf("%s: FullCount() = %d, want %d", c.name, got, c.full)
		}
		if got := s.CompressedCount(); got != c.comp {
			t.Errorf("%s: CompressedCount() = %d, want %d", c.name, got, c.comp)
		}
		if !s.Compressed() {
			t.Errorf("%s: preset not compressed", c.name)
		}
		// The root is always kept.
		if got := s.CompressedToFull(0); got != 0 {
			t.Errorf("%s: CompressedToFull(0) = %d, want 0", c.name, got)
		}
	}
}

func TestHumanFlags(t *testing.T) {
	s := Human()

	feet := map[string]bool{"lfoot": true, "rfoot": true}
	fat := map[string]bool{"shoulders": true, "hips": true, "head": true}
	names := s.Names()
	for j := 0; j < s.CompressedCount(); j++ {
		name := names[s.CompressedToFull(j)]
		if got := s.IsFoot(j); got != feet[name] {
			t.Errorf("IsFoot(%s) = %v, want %v", name, got, feet[name])
		}
		if got := s.IsFat(j); got != fat[name] {
			t.Errorf("IsFat(%s) = %v, want %v", name, got, fat[name])
		}
	}
}

func TestHumanSymmetry(t *testing.T) {
	s := Human()

	pairs := [][2]string{
		{"lfoot", "rfoot"},
		{"lhand", "rhand"},
	}
	for _, p := range pairs {
		il, _ := s.JointIndex(p[0])
		ir, _ := s.JointIndex(p[1])
		jl := s.FullToCompressed(il)
		jr := s.FullToCompressed(ir)
		if jl < 0 || jr < 0 {
			t.Fatalf("%v did not survive compression", p)
		}
		// The larger compressed index points at the smaller.
		if got := s.CompressedSymmetric(jr); got != jl {
			t.Errorf("CompressedSymmetric(%s) = %d, want %d", p[1], got, jl)
		}
	}
}

func TestHumanBoneLengths(t *testing.T) {
	s := Human()
	names := s.Names()

	find := func(name string) int {
		i, ok := s.JointIndex(name)
		if !ok {
			t.Fatalf("joint %q missing", name)
		}
		j := s.FullToCompressed(i)
		if j < 0 {
			t.Fatalf("joint %q collapsed", name)
		}
		return j
	}

	// head is a direct child of shoulders: |0.35 - 0.25| after scaling.
	if got := s.BoneLength(find("head")); !scalar.EqualWithinAbs(got, 0.1, tol) {
		t.Errorf("head bone length = %v, want 0.1", got)
	}

	// hips absorbs back: 0.075 + 0.175 along the spine.
	jHips := find("hips")
	if got := s.BoneLength(jHips); !scalar.EqualWithinAbs(got, 0.25, tol) {
		t.Errorf("hips bone length = %v, want 0.25", got)
	}
	iBack, _ := s.JointIndex("back")
	if got := s.Fraction(iBack); !scalar.EqualWithinAbs(got, 0.7, tol) {
		t.Errorf("Fraction(back) = %v, want 0.7", got)
	}
	iHips, _ := s.JointIndex("hips")
	if got := s.Fraction(iHips); !scalar.EqualWithinAbs(got, 0.3, tol) {
		t.Errorf("Fraction(hips) = %v, want 0.3", got)
	}

	// Sanity: every non-root compressed bone has positive length.
	for j := 1; j < s.CompressedCount(); j++ {
		if s.BoneLength(j) <= 0 {
			t.Errorf("BoneLength(%s) = %v, want > 0",
				names[s.CompressedToFull(j)], s.BoneLength(j))
		}
	}
}

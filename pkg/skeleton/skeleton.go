// Package skeleton implements the joint-hierarchy model of the rigging
// pipeline: a full graph holding every authored joint, and a compressed
// graph where pass-through joints are absorbed into the surrounding bone.
// A skeleton is built joint by joint, compressed once, and read-only
// afterwards except for uniform rescaling.
package skeleton

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/rigkit/pkg/geom"
)

// Skeleton errors.
var (
	ErrUnknownJoint   = errors.New("unknown joint name")
	ErrDuplicateJoint = errors.New("duplicate joint name")
	ErrCollapsedJoint = errors.New("joint was collapsed during compression")
	ErrNotCompressed  = errors.New("skeleton is not compressed yet")
)

// authoringScale maps joint positions authored in the [-1,1] cube onto the
// [0,1] unit-cube convention skeletons are fit in.
const authoringScale = 0.5

var log = zap.NewNop()

// SetLogger directs the package's diagnostics to l. Call before any
// skeleton construction; the default is a no-op logger.
func SetLogger(l *zap.Logger) {
	log = l
}

// Skeleton holds a full joint hierarchy and, after Compress, the derived
// compressed hierarchy with its cross-maps. Joint names are unique per
// skeleton. The zero value is not usable; call New.
type Skeleton struct {
	names map[string]int

	// full graph, one entry per authored joint
	fVerts []geom.Vec3
	fPrev  []int // parent full index, -1 for the root
	fSym   []int // symmetric partner, recorded on the larger index, -1 none
	fEdges [][]int

	compressed bool

	// compressed graph, one entry per kept joint
	cVerts  []geom.Vec3
	cPrev   []int
	cSym    []int
	cLength []float64 // distance to the compressed parent along the chain
	cFoot   []bool
	cFat    []bool
	cEdges  [][]int

	// cross-maps between the two graphs
	fullToComp []int     // -1 where the full joint was collapsed away
	compToFull []int
	fraction   []float64 // full-indexed own-edge/chain-length ratio, -1 undefined
}

// New returns an empty skeleton ready for MakeJoint calls.
func New() *Skeleton {
	return &Skeleton{names: make(map[string]int)}
}

// MakeJoint appends one full joint. pos is authored in the [-1,1] cube and
// is rescaled on insertion. An empty parent makes the joint the root; the
// first joint must be the root. The parent must name a joint created by an
// earlier MakeJoint call.
func (s *Skeleton) MakeJoint(name string, pos geom.Vec3, parent string) error {
	if _, ok := s.names[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateJoint, name)
	}
	prev := -1
	if parent != "" {
		p, ok := s.names[parent]
		if !ok {
			return fmt.Errorf("%w: parent %q of %q", ErrUnknownJoint, parent, name)
		}
		prev = p
	}

	cur := len(s.fVerts)
	s.names[name] = cur
	s.fVerts = append(s.fVerts, pos.Scale(authoringScale))
	s.fSym = append(s.fSym, -1)
	s.fPrev = append(s.fPrev, prev)
	s.fEdges = append(s.fEdges, nil)
	if prev >= 0 {
		s.fEdges[cur] = append(s.fEdges[cur], prev)
		s.fEdges[prev] = append(s.fEdges[prev], cur)
	}
	return nil
}

// MakeSymmetric marks two joints as mirror images. The pairing is recorded
// on the larger full index, pointing at the smaller. Both joints must
// already exist; call before Compress for the pairing to reach the
// compressed graph.
func (s *Skeleton) MakeSymmetric(a, b string) error {
	ia, ok := s.names[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownJoint, a)
	}
	ib, ok := s.names[b]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownJoint, b)
	}
	if ia > ib {
		ia, ib = ib, ia
	}
	s.fSym[ib] = ia
	return nil
}

// Compress derives the compressed graph from the full graph: every joint
// with exactly two graph edges, other than the root, is collapsed into the
// bone spanning its chain. Builds the cross-maps, compressed parent and
// symmetry links, cumulative bone lengths, and the per-joint edge-length
// fractions. Structural topology is frozen afterwards.
func (s *Skeleton) Compress() {
	n := len(s.fVerts)
	s.fullToComp = make([]int, n)
	s.fraction = make([]float64, n)
	for i := range s.fullToComp {
		s.fullToComp[i] = -1
		s.fraction[i] = -1
	}

	// The root is always kept, whatever its degree.
	s.compToFull = s.compToFull[:0]
	for i := 0; i < n; i++ {
		if len(s.fEdges[i]) == 2 && i != 0 {
			continue
		}
		s.fullToComp[i] = len(s.compToFull)
		s.compToFull = append(s.compToFull, i)
	}

	m := len(s.compToFull)
	s.cVerts = make([]geom.Vec3, m)
	s.cPrev = make([]int, m)
	s.cSym = make([]int, m)
	s.cLength = make([]float64, m)
	s.cFoot = make([]bool, m)
	s.cFat = make([]bool, m)
	s.cEdges = make([][]int, m)

	for j := 0; j < m; j++ {
		full := s.compToFull[j]
		s.cVerts[j] = s.fVerts[full]
		s.cPrev[j] = -1
		s.cSym[j] = -1

		// TODO: propagate symmetry recorded on joints collapsed into the
		// chain; only the surviving joint's own slot is consulted here, so
		// a pairing on an interior chain joint is lost.
		if s.fSym[full] >= 0 {
			s.cSym[j] = s.fullToComp[s.fSym[full]]
		}

		if j > 0 {
			cur := s.fPrev[full]
			for s.fullToComp[cur] < 0 {
				cur = s.fPrev[cur]
			}
			s.cPrev[j] = s.fullToComp[cur]
		}
	}

	for j := 1; j < m; j++ {
		s.cEdges[j] = append(s.cEdges[j], s.cPrev[j])
		s.cEdges[s.cPrev[j]] = append(s.cEdges[s.cPrev[j]], j)
	}

	// Walk each chain from its kept endpoint up to the next kept ancestor,
	// summing edge lengths; every joint visited records the ratio of its
	// own incoming edge to the chain total.
	for j := 1; j < m; j++ {
		cur := s.compToFull[j]
		lengths := make(map[int]float64)
		for {
			l := s.fVerts[cur].Distance(s.fVerts[s.fPrev[cur]])
			lengths[cur] = l
			s.cLength[j] += l
			cur = s.fPrev[cur]
			if s.fullToComp[cur] >= 0 {
				break
			}
		}
		for i, l := range lengths {
			s.fraction[i] = l / s.cLength[j]
		}
	}

	s.compressed = true
}

// SetFoot flags the named joint as a foot in the compressed graph. The
// joint must have survived compression.
func (s *Skeleton) SetFoot(name string) error {
	j, err := s.compressedIndex(name)
	if err != nil {
		return err
	}
	s.cFoot[j] = true
	return nil
}

// SetFat flags the named joint as fat/thick in the compressed graph. The
// joint must have survived compression.
func (s *Skeleton) SetFat(name string) error {
	j, err := s.compressedIndex(name)
	if err != nil {
		return err
	}
	s.cFat[j] = true
	return nil
}

func (s *Skeleton) compressedIndex(name string) (int, error) {
	if !s.compressed {
		return 0, ErrNotCompressed
	}
	i, ok := s.names[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownJoint, name)
	}
	j := s.fullToComp[i]
	if j < 0 {
		return 0, fmt.Errorf("%w: %q", ErrCollapsedJoint, name)
	}
	return j, nil
}

// Scale multiplies every full and compressed joint position and every
// compressed bone length by factor. Topology, flags, and cross-maps are
// untouched. Must not run concurrently with readers.
func (s *Skeleton) Scale(factor float64) {
	for i := range s.fVerts {
		s.fVerts[i] = s.fVerts[i].Scale(factor)
	}
	for j := range s.cVerts {
		s.cVerts[j] = s.cVerts[j].Scale(factor)
		s.cLength[j] *= factor
	}
}

package skeleton

import "github.com/Faultbox/rigkit/pkg/geom"

// Read access for the embedding optimizer. Full-graph accessors are valid
// as soon as the joints exist; compressed-graph accessors require Compress.

// FullCount returns the number of authored joints.
func (s *Skeleton) FullCount() int {
	return len(s.fVerts)
}

// CompressedCount returns the number of joints kept by Compress.
func (s *Skeleton) CompressedCount() int {
	return len(s.compToFull)
}

// Compressed reports whether Compress has run.
func (s *Skeleton) Compressed() bool {
	return s.compressed
}

// JointIndex returns the full index of the named joint.
func (s *Skeleton) JointIndex(name string) (int, bool) {
	i, ok := s.names[name]
	return i, ok
}

// Names returns the joint names ordered by full index.
func (s *Skeleton) Names() []string {
	out := make([]string, len(s.fVerts))
	for name, i := range s.names {
		out[i] = name
	}
	return out
}

// FullPosition returns the position of full joint i.
func (s *Skeleton) FullPosition(i int) geom.Vec3 {
	return s.fVerts[i]
}

// Parent returns the parent full index of full joint i, or -1 for the root.
func (s *Skeleton) Parent(i int) int {
	return s.fPrev[i]
}

// Symmetric returns the symmetric-partner full index of full joint i, or -1.
// The pairing is stored on the larger index of a pair.
func (s *Skeleton) Symmetric(i int) int {
	return s.fSym[i]
}

// FullDegree returns the number of graph edges at full joint i.
func (s *Skeleton) FullDegree(i int) int {
	return len(s.fEdges[i])
}

// CompressedPosition returns the position of compressed joint j.
func (s *Skeleton) CompressedPosition(j int) geom.Vec3 {
	return s.cVerts[j]
}

// CompressedParent returns the parent compressed index of compressed joint
// j, or -1 for the root.
func (s *Skeleton) CompressedParent(j int) int {
	return s.cPrev[j]
}

// CompressedSymmetric returns the symmetric-partner compressed index of
// compressed joint j, or -1.
func (s *Skeleton) CompressedSymmetric(j int) int {
	return s.cSym[j]
}

// CompressedDegree returns the number of graph edges at compressed joint j.
func (s *Skeleton) CompressedDegree(j int) int {
	return len(s.cEdges[j])
}

// BoneLength returns the length of compressed joint j's bone: the sum of
// full-graph edge lengths from j up to its compressed parent. The root's
// length is 0.
func (s *Skeleton) BoneLength(j int) float64 {
	return s.cLength[j]
}

// IsFoot reports whether compressed joint j was flagged by SetFoot.
func (s *Skeleton) IsFoot(j int) bool {
	return s.cFoot[j]
}

// IsFat reports whether compressed joint j was flagged by SetFat.
func (s *Skeleton) IsFat(j int) bool {
	return s.cFat[j]
}

// FullToCompressed returns the compressed index of full joint i, or -1 if
// it was collapsed away.
func (s *Skeleton) FullToCompressed(i int) int {
	return s.fullToComp[i]
}

// CompressedToFull returns the full index of compressed joint j.
func (s *Skeleton) CompressedToFull(j int) int {
	return s.compToFull[j]
}

// Fraction returns, for a non-root full joint i, the length of i's incoming
// edge divided by the total length of the compressed bone that subsumed it,
// or -1 where undefined (the root).
func (s *Skeleton) Fraction(i int) float64 {
	return s.fraction[i]
}

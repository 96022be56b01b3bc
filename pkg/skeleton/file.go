package skeleton

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/rigkit/pkg/geom"
)

// fileScale compensates the authoring half-scale so file coordinates are
// taken as written.
const fileScale = 2

// noParent is the sentinel parent field marking a root joint.
const noParent = "-1"

// FromFile reads a skeleton from a whitespace-delimited text file with one
// joint per line: name, three decimal coordinates, and the parent joint
// name (the sentinel "-1" for no parent). Records with fewer than five
// fields are skipped silently; records naming an unknown parent or a
// duplicate joint are skipped with a logged warning. If the file cannot be
// opened the failure is logged and an empty skeleton is returned, so
// callers should check FullCount before use. The skeleton is compressed
// before it is returned.
func FromFile(path string) *Skeleton {
	s := New()

	f, err := os.Open(path)
	if err != nil {
		log.Error("opening skeleton file", zap.String("path", path), zap.Error(err))
		return s
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 5 {
			continue
		}

		var pos geom.Vec3
		var bad bool
		for i, dst := range []*float64{&pos.X, &pos.Y, &pos.Z} {
			v, err := strconv.ParseFloat(fields[1+i], 64)
			if err != nil {
				bad = true
				break
			}
			*dst = v
		}
		if bad {
			continue
		}

		parent := fields[4]
		if parent == noParent {
			parent = ""
		}
		if err := s.MakeJoint(fields[0], pos.Scale(fileScale), parent); err != nil {
			log.Warn("skipping skeleton record",
				zap.String("path", path), zap.String("joint", fields[0]), zap.Error(err))
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error("reading skeleton file", zap.String("path", path), zap.Error(err))
	}

	s.Compress()
	return s
}

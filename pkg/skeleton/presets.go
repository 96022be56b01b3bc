package skeleton

import (
	"fmt"

	"github.com/Faultbox/rigkit/pkg/geom"
)

// Species presets. Each is a static joint table driving the one builder;
// the order of the joint rows matters because collapse decisions and
// symmetry slots depend on insertion order.

type jointRow struct {
	name   string
	pos    geom.Vec3
	parent string
}

type preset struct {
	joints []jointRow
	sym    [][2]string
	feet   []string
	fat    []string
}

func (p preset) build() *Skeleton {
	s := New()
	for _, j := range p.joints {
		must(s.MakeJoint(j.name, j.pos, j.parent))
	}
	for _, pair := range p.sym {
		must(s.MakeSymmetric(pair[0], pair[1]))
	}
	s.Compress()
	for _, name := range p.feet {
		must(s.SetFoot(name))
	}
	for _, name := range p.fat {
		must(s.SetFat(name))
	}
	return s
}

// must panics: preset tables are static data, a failure is a bad table.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("skeleton: bad preset table: %v", err))
	}
}

// Human returns the compressed biped skeleton.
func Human() *Skeleton {
	return humanPreset.build()
}

// Quad returns the compressed quadruped skeleton.
func Quad() *Skeleton {
	return quadPreset.build()
}

// Horse returns the compressed horse skeleton; its hind legs carry an
// extra heel joint over the plain quadruped.
func Horse() *Skeleton {
	return horsePreset.build()
}

// Centaur returns the compressed centaur skeleton: a quadruped body with a
// humanoid torso and arms.
func Centaur() *Skeleton {
	return centaurPreset.build()
}

var humanPreset = preset{
	joints: []jointRow{
		{"shoulders", geom.Vec3{X: 0, Y: 0.5, Z: 0}, ""},
		{"back", geom.Vec3{X: 0, Y: 0.15, Z: 0}, "shoulders"},
		{"hips", geom.Vec3{X: 0, Y: 0, Z: 0}, "back"},
		{"head", geom.Vec3{X: 0, Y: 0.7, Z: 0}, "shoulders"},

		{"lthigh", geom.Vec3{X: -0.1, Y: 0, Z: 0}, "hips"},
		{"lknee", geom.Vec3{X: -0.15, Y: -0.35, Z: 0}, "lthigh"},
		{"lankle", geom.Vec3{X: -0.15, Y: -0.8, Z: 0}, "lknee"},
		{"lfoot", geom.Vec3{X: -0.15, Y: -0.8, Z: 0.1}, "lankle"},

		{"rthigh", geom.Vec3{X: 0.1, Y: 0, Z: 0}, "hips"},
		{"rknee", geom.Vec3{X: 0.15, Y: -0.35, Z: 0}, "rthigh"},
		{"rankle", geom.Vec3{X: 0.15, Y: -0.8, Z: 0}, "rknee"},
		{"rfoot", geom.Vec3{X: 0.15, Y: -0.8, Z: 0.1}, "rankle"},

		{"lshoulder", geom.Vec3{X: -0.2, Y: 0.5, Z: 0}, "shoulders"},
		{"lelbow", geom.Vec3{X: -0.4, Y: 0.25, Z: 0.075}, "lshoulder"},
		{"lhand", geom.Vec3{X: -0.6, Y: 0, Z: 0.15}, "lelbow"},

		{"rshoulder", geom.Vec3{X: 0.2, Y: 0.5, Z: 0}, "shoulders"},
		{"relbow", geom.Vec3{X: 0.4, Y: 0.25, Z: 0.075}, "rshoulder"},
		{"rhand", geom.Vec3{X: 0.6, Y: 0, Z: 0.15}, "relbow"},
	},
	sym: [][2]string{
		{"lthigh", "rthigh"},
		{"lknee", "rknee"},
		{"lankle", "rankle"},
		{"lfoot", "rfoot"},
		{"lshoulder", "rshoulder"},
		{"lelbow", "relbow"},
		{"lhand", "rhand"},
	},
	feet: []string{"lfoot", "rfoot"},
	fat:  []string{"hips", "shoulders", "head"},
}

var quadPreset = preset{
	joints: []jointRow{
		{"shoulders", geom.Vec3{X: 0, Y: 0, Z: 0.5}, ""},
		{"back", geom.Vec3{X: 0, Y: 0, Z: 0}, "shoulders"},
		{"hips", geom.Vec3{X: 0, Y: 0, Z: -0.5}, "back"},
		{"neck", geom.Vec3{X: 0, Y: 0.2, Z: 0.63}, "shoulders"},
		{"head", geom.Vec3{X: 0, Y: 0.2, Z: 0.9}, "neck"},

		{"lthigh", geom.Vec3{X: -0.15, Y: 0, Z: -0.5}, "hips"},
		{"lhknee", geom.Vec3{X: -0.2, Y: -0.4, Z: -0.5}, "lthigh"},
		{"lhfoot", geom.Vec3{X: -0.2, Y: -0.8, Z: -0.5}, "lhknee"},

		{"rthigh", geom.Vec3{X: 0.15, Y: 0, Z: -0.5}, "hips"},
		{"rhknee", geom.Vec3{X: 0.2, Y: -0.4, Z: -0.5}, "rthigh"},
		{"rhfoot", geom.Vec3{X: 0.2, Y: -0.8, Z: -0.5}, "rhknee"},

		{"lshoulder", geom.Vec3{X: -0.2, Y: 0, Z: 0.5}, "shoulders"},
		{"lfknee", geom.Vec3{X: -0.2, Y: -0.4, Z: 0.5}, "lshoulder"},
		{"lffoot", geom.Vec3{X: -0.2, Y: -0.8, Z: 0.5}, "lfknee"},

		{"rshoulder", geom.Vec3{X: 0.2, Y: 0, Z: 0.5}, "shoulders"},
		{"rfknee", geom.Vec3{X: 0.2, Y: -0.4, Z: 0.5}, "rshoulder"},
		{"rffoot", geom.Vec3{X: 0.2, Y: -0.8, Z: 0.5}, "rfknee"},

		{"tail", geom.Vec3{X: 0, Y: 0, Z: -0.7}, "hips"},
	},
	sym: [][2]string{
		{"lthigh", "rthigh"},
		{"lhknee", "rhknee"},
		{"lhfoot", "rhfoot"},
		{"lshoulder", "rshoulder"},
		{"lfknee", "rfknee"},
		{"lffoot", "rffoot"},
	},
	feet: []string{"lhfoot", "rhfoot", "lffoot", "rffoot"},
	fat:  []string{"hips", "shoulders", "head"},
}

var horsePreset = preset{
	joints: []jointRow{
		{"shoulders", geom.Vec3{X: 0, Y: 0, Z: 0.5}, ""},
		{"back", geom.Vec3{X: 0, Y: 0, Z: 0}, "shoulders"},
		{"hips", geom.Vec3{X: 0, Y: 0, Z: -0.5}, "back"},
		{"neck", geom.Vec3{X: 0, Y: 0.2, Z: 0.63}, "shoulders"},
		{"head", geom.Vec3{X: 0, Y: 0.2, Z: 0.9}, "neck"},

		{"lthigh", geom.Vec3{X: -0.15, Y: 0, Z: -0.5}, "hips"},
		{"lhknee", geom.Vec3{X: -0.2, Y: -0.2, Z: -0.45}, "lthigh"},
		{"lhheel", geom.Vec3{X: -0.2, Y: -0.4, Z: -0.5}, "lhknee"},
		{"lhfoot", geom.Vec3{X: -0.2, Y: -0.8, Z: -0.5}, "lhheel"},

		{"rthigh", geom.Vec3{X: 0.15, Y: 0, Z: -0.5}, "hips"},
		{"rhknee", geom.Vec3{X: 0.2, Y: -0.2, Z: -0.45}, "rthigh"},
		{"rhheel", geom.Vec3{X: 0.2, Y: -0.4, Z: -0.5}, "rhknee"},
		{"rhfoot", geom.Vec3{X: 0.2, Y: -0.8, Z: -0.5}, "rhheel"},

		{"lshoulder", geom.Vec3{X: -0.2, Y: 0, Z: 0.5}, "shoulders"},
		{"lfknee", geom.Vec3{X: -0.2, Y: -0.4, Z: 0.5}, "lshoulder"},
		{"lffoot", geom.Vec3{X: -0.2, Y: -0.8, Z: 0.5}, "lfknee"},

		{"rshoulder", geom.Vec3{X: 0.2, Y: 0, Z: 0.5}, "shoulders"},
		{"rfknee", geom.Vec3{X: 0.2, Y: -0.4, Z: 0.5}, "rshoulder"},
		{"rffoot", geom.Vec3{X: 0.2, Y: -0.8, Z: 0.5}, "rfknee"},

		{"tail", geom.Vec3{X: 0, Y: 0, Z: -0.7}, "hips"},
	},
	sym: [][2]string{
		{"lthigh", "rthigh"},
		{"lhknee", "rhknee"},
		{"lhheel", "rhheel"},
		{"lhfoot", "rhfoot"},
		{"lshoulder", "rshoulder"},
		{"lfknee", "rfknee"},
		{"lffoot", "rffoot"},
	},
	feet: []string{"lhfoot", "rhfoot", "lffoot", "rffoot"},
	fat:  []string{"hips", "shoulders", "head"},
}

// The centaur table has no heel joints, so unlike the horse it carries no
// heel symmetry pair.
var centaurPreset = preset{
	joints: []jointRow{
		{"shoulders", geom.Vec3{X: 0, Y: 0, Z: 0.5}, ""},
		{"back", geom.Vec3{X: 0, Y: 0, Z: 0}, "shoulders"},
		{"hips", geom.Vec3{X: 0, Y: 0, Z: -0.5}, "back"},

		{"hback", geom.Vec3{X: 0, Y: 0.25, Z: 0.5}, "shoulders"},
		{"hshoulders", geom.Vec3{X: 0, Y: 0.5, Z: 0.5}, "hback"},
		{"head", geom.Vec3{X: 0, Y: 0.7, Z: 0.5}, "hshoulders"},

		{"lthigh", geom.Vec3{X: -0.15, Y: 0, Z: -0.5}, "hips"},
		{"lhknee", geom.Vec3{X: -0.2, Y: -0.4, Z: -0.45}, "lthigh"},
		{"lhfoot", geom.Vec3{X: -0.2, Y: -0.8, Z: -0.5}, "lhknee"},

		{"rthigh", geom.Vec3{X: 0.15, Y: 0, Z: -0.5}, "hips"},
		{"rhknee", geom.Vec3{X: 0.2, Y: -0.4, Z: -0.45}, "rthigh"},
		{"rhfoot", geom.Vec3{X: 0.2, Y: -0.8, Z: -0.5}, "rhknee"},

		{"lshoulder", geom.Vec3{X: -0.2, Y: 0, Z: 0.5}, "shoulders"},
		{"lfknee", geom.Vec3{X: -0.2, Y: -0.4, Z: 0.5}, "lshoulder"},
		{"lffoot", geom.Vec3{X: -0.2, Y: -0.8, Z: 0.5}, "lfknee"},

		{"rshoulder", geom.Vec3{X: 0.2, Y: 0, Z: 0.5}, "shoulders"},
		{"rfknee", geom.Vec3{X: 0.2, Y: -0.4, Z: 0.5}, "rshoulder"},
		{"rffoot", geom.Vec3{X: 0.2, Y: -0.8, Z: 0.5}, "rfknee"},

		{"hlshoulder", geom.Vec3{X: -0.2, Y: 0.5, Z: 0.5}, "hshoulders"},
		{"lelbow", geom.Vec3{X: -0.4, Y: 0.25, Z: 0.575}, "hlshoulder"},
		{"lhand", geom.Vec3{X: -0.6, Y: 0, Z: 0.65}, "lelbow"},

		{"hrshoulder", geom.Vec3{X: 0.2, Y: 0.5, Z: 0.5}, "hshoulders"},
		{"relbow", geom.Vec3{X: 0.4, Y: 0.25, Z: 0.575}, "hrshoulder"},
		{"rhand", geom.Vec3{X: 0.6, Y: 0, Z: 0.65}, "relbow"},

		{"tail", geom.Vec3{X: 0, Y: 0, Z: -0.7}, "hips"},
	},
	sym: [][2]string{
		{"lthigh", "rthigh"},
		{"lhknee", "rhknee"},
		{"lhfoot", "rhfoot"},
		{"lshoulder", "rshoulder"},
		{"lfknee", "rfknee"},
		{"lffoot", "rffoot"},
		{"hlshoulder", "hrshoulder"},
		{"lelbow", "relbow"},
		{"lhand", "rhand"},
	},
	feet: []string{"lhfoot", "rhfoot", "lffoot", "rffoot"},
	fat:  []string{"hips", "shoulders", "hshoulders", "head"},
}

// Package targeting implements components I and J: the target
// classifier and the fire-decision gate, spec.md §4.I-§4.J.
package targeting

import (
	"math/rand"

	"autoaim/config"
)

// TargetID is the closed tagged union of robot classes spec.md §3 names.
type TargetID int

const (
	UnknownTarget TargetID = iota
	Hero
	Sentry
	Infantry3
	Infantry4
	Infantry5
)

func (t TargetID) String() string {
	switch t {
	case Hero:
		return "HERO"
	case Sentry:
		return "SENTRY"
	case Infantry3:
		return "INFANTRY_3"
	case Infantry4:
		return "INFANTRY_4"
	case Infantry5:
		return "INFANTRY_5"
	default:
		return "UNKNOWN"
	}
}

// bit returns this target's position in a config.ValidityMask.
func (t TargetID) bit() config.ValidityMask {
	switch t {
	case Hero:
		return 1 << 0
	case Sentry:
		return 1 << 1
	case Infantry3:
		return 1 << 2
	case Infantry4:
		return 1 << 3
	case Infantry5:
		return 1 << 4
	default:
		return 0
	}
}

// Classification is component I's output.
type Classification struct {
	ID       TargetID
	Priority int // 1 (highest) .. 5
}

// classTable maps the spec.md §4.I draw [1,5] to (id, priority).
var classTable = map[int]Classification{
	1: {Hero, 1},
	2: {Sentry, 2},
	3: {Infantry3, 3},
	4: {Infantry4, 4},
	5: {Infantry5, 5},
}

// Classifier is the pluggable interface spec.md §9 calls for: a real
// deployment replaces RandomClassifier with a learned digit/class
// classifier operating on the armor's image patch. No such classifier
// is built here (non-goal: learned detectors); this interface is the
// documented extension point.
type Classifier interface {
	Classify() Classification
}

// RandomClassifier is the only Classifier implementation in this repo:
// a uniform random draw over the five robot classes, explicitly a
// demonstration placeholder per spec.md §4.I/§9.
type RandomClassifier struct {
	rng *rand.Rand
}

// NewRandomClassifier returns a RandomClassifier seeded from seed.
func NewRandomClassifier(seed int64) *RandomClassifier {
	return &RandomClassifier{rng: rand.New(rand.NewSource(seed))}
}

// Classify draws a uniform integer in [1,5] and maps it per spec.md §4.I.
func (c *RandomClassifier) Classify() Classification {
	roll := 1 + c.rng.Intn(5)
	return classTable[roll]
}

// Validate applies the configurable validity mask (spec.md §4.I): the
// TargetInvalid error kind of spec.md §7 sets is_valid_target false when
// the mask rejects the drawn class.
func Validate(c Classification, mask config.ValidityMask) bool {
	return mask&c.ID.bit() != 0
}

package rtree

import "math"

// epsilon is the absolute tolerance used for all area/coordinate
// equality comparisons in this package (spec ε = 1e-9).
const epsilon = 1e-9

// Box2 is an axis-aligned rectangle. The zero value is the empty box:
// full is false until a constructor populates min/max, so a bare
// `var b Box2` behaves exactly like emptyBox2.
type Box2 struct {
	full     bool
	min, max Point2
}

// emptyBox2 is the canonical empty box: it overlaps nothing, has zero
// area, and acts as the identity element of Merge.
var emptyBox2 = Box2{}

// NewBox2 builds a non-empty box from two corner points, normalising
// them so that Min is the componentwise minimum and Max the
// componentwise maximum.
func NewBox2(p1, p2 Point2) Box2 {
	return Box2{
		full: true,
		min:  Point2{X: minF(p1.X, p2.X), Y: minF(p1.Y, p2.Y)},
		max:  Point2{X: maxF(p1.X, p2.X), Y: maxF(p1.Y, p2.Y)},
	}
}

// FromPoint returns the zero-area box whose min and max both equal p.
func FromPoint(p Point2) Box2 {
	return Box2{full: true, min: p, max: p}
}

// IsEmpty reports whether b is the empty box.
func (b Box2) IsEmpty() bool {
	return !b.full
}

// Min returns the box's minimum corner. Undefined for an empty box.
func (b Box2) Min() Point2 {
	return b.min
}

// Max returns the box's maximum corner. Undefined for an empty box.
func (b Box2) Max() Point2 {
	return b.max
}

// Area returns 0 for the empty box, otherwise the (non-negative)
// rectangle area.
func (b Box2) Area() float64 {
	if !b.full {
		return 0
	}
	return maxF(0, (b.max.X-b.min.X)*(b.max.Y-b.min.Y))
}

// Overlap reports whether b and other intersect, treating boundary
// contact as overlap (closed-interval semantics on both axes).
func (b Box2) Overlap(other Box2) bool {
	if !b.full || !other.full {
		return false
	}
	return b.min.X <= other.max.X && b.max.X >= other.min.X &&
		b.min.Y <= other.max.Y && b.max.Y >= other.min.Y
}

// MergeBox2 returns the smallest box containing both b1 and b2. An
// empty operand is absorbed: merging anything with empty returns the
// other operand unchanged.
func MergeBox2(b1, b2 Box2) Box2 {
	if !b1.full {
		return b2
	}
	if !b2.full {
		return b1
	}
	return Box2{
		full: true,
		min:  Point2{X: minF(b1.min.X, b2.min.X), Y: minF(b1.min.Y, b2.min.Y)},
		max:  Point2{X: maxF(b1.max.X, b2.max.X), Y: maxF(b1.max.Y, b2.max.Y)},
	}
}

// EnlargeArea returns the growth in area that would result from
// merging other into b: Merge(b, other).Area() - b.Area().
func (b Box2) EnlargeArea(other Box2) float64 {
	return MergeBox2(b, other).Area() - b.Area()
}

// Equal compares b and other within the package's absolute tolerance.
// Two empty boxes are always equal; an empty box is never equal to a
// non-empty one.
func (b Box2) Equal(other Box2) bool {
	if b.full != other.full {
		return false
	}
	if !b.full {
		return true
	}
	return almostEqual(b.min.X, other.min.X) &&
		almostEqual(b.min.Y, other.min.Y) &&
		almostEqual(b.max.X, other.max.X) &&
		almostEqual(b.max.Y, other.max.Y)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

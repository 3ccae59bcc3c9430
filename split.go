package rtree

import "github.com/maja42/vmath"

type axis int

const (
	axisX axis = iota
	axisY
)

// split redistributes node's entries into two fresh, same-kind nodes
// using quadratic pick-seeds with the cascaded tie-break rule of
// spec §4.3. Both outputs end with between minEntries and maxEntries
// entries; node itself is left untouched (the caller discards it).
func (r *RTree) split(n *node) (*node, *node) {
	idxA, idxB := chooseBoxes(n)

	a := newNodeLike(n)
	b := newNodeLike(n)
	seedInto(a, n, idxA)
	seedInto(b, n, idxB)

	total := n.size()
	allocated := make([]bool, total)
	allocated[idxA] = true
	allocated[idxB] = true
	remained := total - 2

	for i := 0; i < total; i++ {
		if allocated[i] {
			continue
		}

		// Minimum-fill short-circuit: if forcing all remaining
		// entries into the other side would starve this side below
		// minEntries, route everything left into this side now.
		if a.size()+remained == r.minEntries {
			routeRemaining(a, n, allocated, i)
			break
		}
		if b.size()+remained == r.minEntries {
			routeRemaining(b, n, allocated, i)
			break
		}

		e := n.boxes[i]
		deltaA := a.mbr.EnlargeArea(e)
		deltaB := b.mbr.EnlargeArea(e)
		if destinationIsA(deltaA, deltaB, a, b) {
			seedInto(a, n, i)
		} else {
			seedInto(b, n, i)
		}
		allocated[i] = true
		remained--
	}

	return a, b
}

// routeRemaining assigns entry i and every still-unallocated entry
// after it into dest, in left-to-right order.
func routeRemaining(dest, n *node, allocated []bool, from int) {
	for i := from; i < n.size(); i++ {
		if allocated[i] {
			continue
		}
		seedInto(dest, n, i)
		allocated[i] = true
	}
}

// seedInto copies entry i of n into dest, as either a leaf entry or a
// child entry depending on dest's kind.
func seedInto(dest, n *node, i int) {
	if n.isLeaf {
		dest.pushBackLeaf(n.boxes[i], n.ids[i])
	} else {
		dest.pushBackChild(n.children[i])
	}
}

func newNodeLike(n *node) *node {
	if n.isLeaf {
		return newLeafNode()
	}
	return newInternalNode()
}

// destinationIsA implements the split's per-entry placement cascade:
// smaller area enlargement, then smaller current mbr area, then fewer
// current entries, finally defaulting to a.
func destinationIsA(deltaA, deltaB float64, a, b *node) bool {
	if lessStrict(deltaA, deltaB) {
		return true
	}
	if lessStrict(deltaB, deltaA) {
		return false
	}

	areaA, areaB := a.mbr.Area(), b.mbr.Area()
	if lessStrict(areaA, areaB) {
		return true
	}
	if lessStrict(areaB, areaA) {
		return false
	}

	countA, countB := a.size(), b.size()
	fewer := vmath.Mini(countA, countB)
	if countA == fewer && countB != fewer {
		return true
	}
	if countB == fewer && countA != fewer {
		return false
	}
	return true // fallback: A
}

// chooseBoxes selects two seed entries via the classic Guttman
// quadratic pick-seeds rule, restricted to a cheap per-axis
// separation score (spec §4.3 "choose_boxes"). Panics if node has
// fewer than 2 entries: this indicates an engine bug (split is only
// ever called on an overflowing node, which has at least M+1 >= 2
// entries), never a caller mistake.
func chooseBoxes(n *node) (int, int) {
	if n.size() < 2 {
		panic(errEmptyTreeSplit{})
	}

	sepX, xLow, xHigh := axisSeparation(n, axisX)
	sepY, yLow, yHigh := axisSeparation(n, axisY)

	var idxA, idxB int
	switch {
	case lessStrict(sepX, sepY):
		idxA, idxB = yLow, yHigh
	case lessStrict(sepY, sepX):
		idxA, idxB = xLow, xHigh
	default:
		// Tie (including both zero) falls through to (0, 1).
		idxA, idxB = 0, 1
	}
	if idxA == idxB {
		idxA, idxB = 0, 1
	}
	return idxA, idxB
}

// axisSeparation computes, along the given axis, the normalised
// separation between the highest low-endpoint and the lowest
// high-endpoint among node's entries, plus the indices that achieve
// them (the candidate seed pair for that axis).
func axisSeparation(n *node, ax axis) (separation float64, idxHighestLow, idxLowestHigh int) {
	overallLow := n.boxes[0].min.X
	overallHigh := n.boxes[0].max.X
	if ax == axisY {
		overallLow = n.boxes[0].min.Y
		overallHigh = n.boxes[0].max.Y
	}
	highestLow := overallLow
	lowestHigh := overallHigh

	for i, b := range n.boxes {
		lo, hi := b.min.X, b.max.X
		if ax == axisY {
			lo, hi = b.min.Y, b.max.Y
		}
		if lo < overallLow {
			overallLow = lo
		}
		if hi > overallHigh {
			overallHigh = hi
		}
		if i == 0 || lo > highestLow {
			highestLow = lo
			idxHighestLow = i
		}
		if i == 0 || hi < lowestHigh {
			lowestHigh = hi
			idxLowestHigh = i
		}
	}

	denom := overallHigh - overallLow
	if almostEqual(denom, 0) {
		return 0, idxHighestLow, idxLowestHigh
	}
	sep := (highestLow - lowestHigh) / denom
	if sep < 0 {
		sep = 0
	}
	return sep, idxHighestLow, idxLowestHigh
}

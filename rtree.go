package rtree

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Fan-out bounds for the default, production configuration. Fixed per
// the reference design: callers cannot change them through the public
// API (see Option / withBounds in trace.go, used only by this
// package's own tests to exercise split/underflow behavior at smaller
// bounds).
const (
	M = 8
	m = 2
)

// RTree is a dynamic, height-balanced spatial index over axis-aligned
// boxes tagged by caller-supplied integer ids. A zero-value RTree is
// not usable; construct one with New.
type RTree struct {
	root    *node
	idToBox map[int32]Box2

	maxEntries, minEntries int

	log *zap.Logger
}

// New constructs an empty RTree with a single empty leaf root.
func New(opts ...Option) *RTree {
	r := &RTree{
		root:       newLeafNode(),
		idToBox:    make(map[int32]Box2),
		maxEntries: M,
		minEntries: m,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Insert adds box under id. It fails with ErrDuplicateID if id is
// already live.
func (r *RTree) Insert(box Box2, id int32) error {
	if err := r.insertInternal(box, id); err != nil {
		return err
	}
	r.log.Debug("insert", zap.Int32("id", id), zap.Any("box", box))
	return nil
}

func (r *RTree) insertInternal(box Box2, id int32) error {
	if _, ok := r.idToBox[id]; ok {
		return errors.Wrapf(ErrDuplicateID, "id %d", id)
	}
	r.idToBox[id] = box

	path := r.chooseLeaf(box)
	r.insertToNode(path, box, id)
	return nil
}

// chooseLeaf descends from the root picking, at each internal node,
// the child that minimises enlargeArea(box) (ties broken by smallest
// current mbr area, then stable first-occurrence). It returns the
// descent path in leaf-first order: path[0] is the chosen leaf,
// path[len(path)-1] is the root.
func (r *RTree) chooseLeaf(box Box2) []*node {
	var rootFirst []*node
	cur := r.root
	for {
		rootFirst = append(rootFirst, cur)
		if cur.isLeaf {
			break
		}
		cur = pickChild(cur, box)
	}
	path := make([]*node, len(rootFirst))
	for i, n := range rootFirst {
		path[len(rootFirst)-1-i] = n
	}
	return path
}

func pickChild(n *node, box Box2) *node {
	best := -1
	var bestEnlarge, bestArea float64
	for i, childBox := range n.boxes {
		enlarge := childBox.EnlargeArea(box)
		area := childBox.Area()
		switch {
		case best == -1:
			best, bestEnlarge, bestArea = i, enlarge, area
		case lessStrict(enlarge, bestEnlarge):
			best, bestEnlarge, bestArea = i, enlarge, area
		case almostEqual(enlarge, bestEnlarge) && lessStrict(area, bestArea):
			best, bestEnlarge, bestArea = i, enlarge, area
		}
	}
	return n.children[best]
}

// insertToNode walks path from the root (index len(path)-1) down to
// the leaf (index 0), merging box into every mbr on the way, appends
// (box, id) to the leaf, and splits + rebalances on overflow.
func (r *RTree) insertToNode(path []*node, box Box2, id int32) {
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		n.mbr = MergeBox2(n.mbr, box)
		if i > 0 {
			childIdx := n.indexOfChild(path[i-1])
			n.boxes[childIdx] = MergeBox2(n.boxes[childIdx], box)
		}
	}

	leaf := path[0]
	leaf.appendLeaf(box, id)

	if leaf.size() <= r.maxEntries {
		return
	}

	a, b := r.split(leaf)
	if len(path) == 1 {
		r.makeNewRoot(a, b)
		return
	}
	r.adjust(path, 1, a, b)
}

// lessStrict reports whether a is smaller than b by more than the
// package tolerance; used throughout the tie-break cascades so ties
// within epsilon fall through to the next discriminator rather than
// being decided by float noise.
func lessStrict(a, b float64) bool {
	return b-a > epsilon
}

package rtree

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Erase removes id from the tree. It fails with ErrUnknownID if id is
// not currently live.
func (r *RTree) Erase(id int32) error {
	if err := r.eraseInternal(id); err != nil {
		return err
	}
	r.log.Debug("erase", zap.Int32("id", id))
	return nil
}

func (r *RTree) eraseInternal(id int32) error {
	removedBox, ok := r.idToBox[id]
	if !ok {
		return errors.Wrapf(ErrUnknownID, "id %d", id)
	}

	path := findPath(r.root, removedBox, id)
	r.removeNode(path, len(path)-1, id)
	delete(r.idToBox, id)
	r.compactRoot()
	return nil
}

// Update relocates id to newBox. It is defined as erase-then-insert;
// there is no in-place relocation optimisation. Fails with
// ErrUnknownID if id is not live.
func (r *RTree) Update(id int32, newBox Box2) error {
	if err := r.eraseInternal(id); err != nil {
		return err
	}
	if err := r.insertInternal(newBox, id); err != nil {
		return err
	}
	r.log.Debug("update", zap.Int32("id", id), zap.Any("box", newBox))
	return nil
}

// findPath locates the unique leaf containing id by descending only
// into children whose stored box overlaps removedBox, stopping at the
// first leaf found. Because ids are unique among live items, this
// search is pruned and never explores siblings once a match is found.
// Returns the path leaf-first, or nil if id is unexpectedly absent
// (cannot happen for a live id).
func findPath(n *node, removedBox Box2, id int32) []*node {
	if n.isLeaf {
		for _, x := range n.ids {
			if x == id {
				return []*node{n}
			}
		}
		return nil
	}
	for i, childBox := range n.boxes {
		if !childBox.Overlap(removedBox) {
			continue
		}
		if sub := findPath(n.children[i], removedBox, id); sub != nil {
			return append(sub, n)
		}
	}
	return nil
}

// removeNode descends path from root (index len(path)-1) to leaf
// (index 0), erases id's entry at the leaf, and forwards the
// resulting mbr upward: a node emptied by the deletion is removed
// from its parent and released; a node that still has entries simply
// gets its stored box updated to its new mbr. Returns the mbr of
// path[level] after the deletion.
func (r *RTree) removeNode(path []*node, level int, id int32) Box2 {
	n := path[level]

	if level == 0 {
		for i, x := range n.ids {
			if x == id {
				n.removeAt(i)
				break
			}
		}
		n.updateMBR()
		return n.mbr
	}

	childMBR := r.removeNode(path, level-1, id)
	child := path[level-1]
	idx := n.indexOfChild(child)

	if child.size() == 0 {
		n.removeAt(idx)
	} else {
		n.boxes[idx] = childMBR
	}
	n.updateMBR()
	return n.mbr
}

// compactRoot collapses a root that has been reduced to a single
// child, and demotes an emptied internal root back to a leaf.
func (r *RTree) compactRoot() {
	if r.root.isLeaf {
		return
	}
	switch len(r.root.children) {
	case 1:
		r.root = r.root.children[0]
	case 0:
		r.root.isLeaf = true
	}
}

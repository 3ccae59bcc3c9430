package rtree

// node is one level of the tree. It holds either leaf entries
// (parallel boxes/ids) or internal entries (parallel boxes/children),
// never both. mbr is always the merge of boxes[*]; for internal nodes
// boxes[i] must equal children[i].mbr after every public operation
// returns.
type node struct {
	isLeaf bool
	mbr    Box2
	boxes  []Box2

	ids      []int32 // populated iff isLeaf
	children []*node // populated iff !isLeaf
}

func newLeafNode() *node {
	return &node{isLeaf: true, mbr: emptyBox2}
}

func newInternalNode() *node {
	return &node{isLeaf: false, mbr: emptyBox2}
}

// size returns the number of entries currently stored in the node.
func (n *node) size() int {
	return len(n.boxes)
}

// pushBackLeaf appends a (box, id) entry to a leaf node and extends
// its cached mbr.
func (n *node) pushBackLeaf(box Box2, id int32) {
	n.boxes = append(n.boxes, box)
	n.ids = append(n.ids, id)
	n.mbr = MergeBox2(n.mbr, box)
}

// appendLeaf appends a (box, id) entry without touching mbr; used
// where the caller has already folded box into mbr itself (the
// insertion path walk merges every ancestor's mbr, including the
// leaf's, before the entry physically exists in boxes/ids).
func (n *node) appendLeaf(box Box2, id int32) {
	n.boxes = append(n.boxes, box)
	n.ids = append(n.ids, id)
}

// pushBackChild appends a child to an internal node and extends its
// cached mbr with the child's mbr.
func (n *node) pushBackChild(child *node) {
	n.boxes = append(n.boxes, child.mbr)
	n.children = append(n.children, child)
	n.mbr = MergeBox2(n.mbr, child.mbr)
}

// updateMBR recomputes mbr as the merge of the current boxes. Called
// after any in-place deletion of an entry.
func (n *node) updateMBR() {
	merged := emptyBox2
	for _, b := range n.boxes {
		merged = MergeBox2(merged, b)
	}
	n.mbr = merged
}

// removeAt deletes the entry at index i from the parallel slices,
// preserving relative order of the remaining entries.
func (n *node) removeAt(i int) {
	n.boxes = append(n.boxes[:i], n.boxes[i+1:]...)
	if n.isLeaf {
		n.ids = append(n.ids[:i], n.ids[i+1:]...)
	} else {
		n.children = append(n.children[:i], n.children[i+1:]...)
	}
}

// indexOfChild returns the index of child in n.children by pointer
// identity, or -1 if not found.
func (n *node) indexOfChild(child *node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

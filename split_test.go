package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseBoxes_PicksFarthestAlongWinningAxis(t *testing.T) {
	n := newLeafNode()
	n.pushBackLeaf(box(0, 0, 1, 1), 0)
	n.pushBackLeaf(box(10, 0, 11, 1), 1) // far on X
	n.pushBackLeaf(box(5, 0, 6, 1), 2)

	idxA, idxB := chooseBoxes(n)
	assert.NotEqual(t, idxA, idxB)
	assert.ElementsMatch(t, []int{0, 1}, []int{idxA, idxB})
}

func TestChooseBoxes_TieFallsThroughToZeroOne(t *testing.T) {
	n := newLeafNode()
	// All identical boxes: separation is 0 on both axes.
	for i := 0; i < 4; i++ {
		n.pushBackLeaf(box(0, 0, 1, 1), int32(i))
	}
	idxA, idxB := chooseBoxes(n)
	assert.Equal(t, 0, idxA)
	assert.Equal(t, 1, idxB)
}

func TestChooseBoxes_PanicsOnTooFewEntries(t *testing.T) {
	n := newLeafNode()
	n.pushBackLeaf(box(0, 0, 1, 1), 0)
	assert.Panics(t, func() { chooseBoxes(n) })
}

// TestSplit_MinimumFillShortCircuit exercises the m-fill guard with a
// tiny node (minEntries=2) where the natural scored placement would
// otherwise starve one side.
func TestSplit_MinimumFillShortCircuit(t *testing.T) {
	tree := New(withBounds(4, 2))

	for i := 0; i < 5; i++ {
		fi := float64(i)
		require.NoError(t, tree.Insert(box(fi, fi, fi+0.1, fi+0.1), int32(i)))
	}

	assertInsertOnlyInvariants(t, tree)
}

func TestSplit_ResultsCoverAllOriginalEntries(t *testing.T) {
	n := newLeafNode()
	ids := []int32{0, 1, 2, 3, 4, 5}
	for i, id := range ids {
		fi := float64(i)
		n.pushBackLeaf(box(fi, 0, fi+1, 1), id)
	}

	tree := New(withBounds(4, 2))
	a, b := tree.split(n)

	seen := map[int32]bool{}
	for _, id := range a.ids {
		seen[id] = true
	}
	for _, id := range b.ids {
		seen[id] = true
	}
	assert.Len(t, seen, len(ids))
	assert.GreaterOrEqual(t, a.size(), tree.minEntries)
	assert.GreaterOrEqual(t, b.size(), tree.minEntries)
	assert.LessOrEqual(t, a.size(), tree.maxEntries)
	assert.LessOrEqual(t, b.size(), tree.maxEntries)
}

package rtree

import "github.com/pkg/errors"

// ErrDuplicateID is returned by Insert when the given id is already
// live in the tree.
var ErrDuplicateID = errors.New("rtree: id already live")

// ErrUnknownID is returned by Erase and Update when the given id is
// not live in the tree.
var ErrUnknownID = errors.New("rtree: id not live")

// errEmptyTreeSplit is raised as a panic by chooseBoxes when invoked
// with fewer than two entries. It can only occur through an engine
// bug (a node overflows into split() with less than M+1 >= 2
// entries), never through misuse of the public API, so it is not a
// typed error a caller could usefully recover from.
type errEmptyTreeSplit struct{}

func (errEmptyTreeSplit) Error() string {
	return "rtree: chooseBoxes called with fewer than 2 entries"
}

package fortune

import "github.com/mikenye/voronoi/dcel"

type color bool

const (
	black color = false
	red   color = true
)

// arc is one node of the beachline: a parabolic piece of the sweep front traced by a
// single site, plus the red-black tree and sibling-list bookkeeping needed to locate and
// remove it (spec.md §3, §4.5).
type arc struct {
	parent, left, right *arc
	clr                 color

	site *dcel.Site

	leftHalfEdge, rightHalfEdge *dcel.HalfEdge
	event                       *event

	// prev/next thread the beachline in left-to-right order; the shared sentinel
	// terminates both ends, exactly as it terminates the tree's left/right/parent
	// fields (spec.md §4.5's "sentinel-terminated prev/next threads").
	prev, next *arc
}

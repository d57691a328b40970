package fortune

import (
	"math"

	"github.com/mikenye/voronoi/dcel"
	"github.com/mikenye/voronoi/vector2"
)

// beachline is a red-black tree of arcs, ordered in-order by the left-to-right
// geometric position of their parabolas under the current sweep line, with a single
// shared sentinel standing in for both "no child" and "no sibling" (spec.md §4.5).
type beachline struct {
	root *arc
	nilA *arc
	eps  float64
}

func newBeachline(eps float64) *beachline {
	nilA := &arc{clr: black}
	return &beachline{root: nilA, nilA: nilA, eps: eps}
}

func (bl *beachline) isNil(a *arc) bool { return a == bl.nilA }

func (bl *beachline) isEmpty() bool { return bl.isNil(bl.root) }

// newArc allocates an arc for site, with every pointer field initialized to the
// sentinel (matching create_arc's contract that a fresh arc is always sentinel-bounded
// until inserted).
func (bl *beachline) newArc(site *dcel.Site) *arc {
	return &arc{
		parent: bl.nilA, left: bl.nilA, right: bl.nilA,
		prev: bl.nilA, next: bl.nilA,
		clr:  red,
		site: site,
	}
}

// setRoot installs x as the tree root, coloring it black. Used only for the very first
// arc; later insertions keep the root correct via the fixup/rotation routines below,
// all of which write through bl.root consistently (spec.md §9's "set the tree's root
// field through one accessor" note).
func (bl *beachline) setRoot(x *arc) {
	bl.root = x
	bl.root.clr = black
}

func (bl *beachline) leftmostArc() *arc {
	x := bl.root
	for !bl.isNil(x.prev) {
		x = x.prev
	}
	return x
}

// computeBreakpoint returns the x-coordinate where the parabolas of p1 and p2 (in that
// left-to-right order) cross under sweep line y=l, per spec.md §4.5's formula. When
// a~0 (p1.y == p2.y to within float precision) the two parabolas never reconverge via
// that formula's root; the breakpoint is then simply the perpendicular bisector's
// x-intercept, i.e. the midpoint of p1.x and p2.x (spec.md §9's flagged numerical
// stability question, resolved here with an epsilon-gated fallback). A site lying on the
// sweep line itself has a degenerate parabola (a vertical ray), so the breakpoint is
// that site's x; if both lie on it, the midpoint is used.
func computeBreakpoint(p1, p2 vector2.Vector2, l, eps float64) float64 {
	x1, y1 := p1.X(), p1.Y()
	x2, y2 := p2.X(), p2.Y()
	switch {
	case y1 == l && y2 == l:
		return (x1 + x2) / 2.0
	case y1 == l:
		return x1
	case y2 == l:
		return x2
	}

	d1 := 1.0 / (2.0 * (y1 - l))
	d2 := 1.0 / (2.0 * (y2 - l))
	a := d1 - d2
	if math.Abs(a) < eps {
		return (x1 + x2) / 2.0
	}
	b := 2.0 * (x2*d2 - x1*d1)
	c := (y1*y1+x1*x1-l*l)*d1 - (y2*y2+x2*x2-l*l)*d2
	delta := b*b - 4.0*a*c
	if delta < 0 {
		delta = 0
	}
	return (-b + math.Sqrt(delta)) / (2.0 * a)
}

// locateArcAbove descends from the root to find the arc whose parabola lies directly
// above point at sweep line l (spec.md §4.5).
func (bl *beachline) locateArcAbove(point vector2.Vector2, l float64) *arc {
	node := bl.root
	for {
		left, right := math.Inf(-1), math.Inf(1)
		if !bl.isNil(node.prev) {
			left = computeBreakpoint(node.prev.site.Point(), node.site.Point(), l, bl.eps)
		}
		if !bl.isNil(node.next) {
			right = computeBreakpoint(node.site.Point(), node.next.site.Point(), l, bl.eps)
		}
		switch {
		case point.X() < left:
			node = node.left
		case point.X() > right:
			node = node.right
		default:
			return node
		}
	}
}

// insertBefore places y as the in-order predecessor of x, reusing x's vacant left
// child slot if there is one, otherwise attaching below x's current predecessor
// (spec.md §4.5).
func (bl *beachline) insertBefore(x, y *arc) {
	if bl.isNil(x.left) {
		x.left = y
		y.parent = x
	} else {
		x.prev.right = y
		y.parent = x.prev
	}
	y.prev = x.prev
	if !bl.isNil(y.prev) {
		y.prev.next = y
	}
	y.next = x
	x.prev = y
	bl.insertFixup(y)
}

// insertAfter is insertBefore's mirror image.
func (bl *beachline) insertAfter(x, y *arc) {
	if bl.isNil(x.right) {
		x.right = y
		y.parent = x
	} else {
		x.next.left = y
		y.parent = x.next
	}
	y.next = x.next
	if !bl.isNil(y.next) {
		y.next.prev = y
	}
	y.prev = x
	x.next = y
	bl.insertFixup(y)
}

// replace substitutes y for x at the same tree position and sibling-thread position,
// without rebalancing (spec.md §4.5).
func (bl *beachline) replace(x, y *arc) {
	bl.transplant(x, y)
	y.left = x.left
	y.right = x.right
	if !bl.isNil(y.left) {
		y.left.parent = y
	}
	if !bl.isNil(y.right) {
		y.right.parent = y
	}
	y.prev = x.prev
	y.next = x.next
	if !bl.isNil(y.prev) {
		y.prev.next = y
	}
	if !bl.isNil(y.next) {
		y.next.prev = y
	}
	y.clr = x.clr
}

// remove deletes z from the tree (standard red-black delete with fixup) and splices it
// out of the prev/next thread (spec.md §4.5).
func (bl *beachline) remove(z *arc) {
	y := z
	yOriginalColor := y.clr
	var x *arc

	if bl.isNil(z.left) {
		x = z.right
		bl.transplant(z, z.right)
	} else if bl.isNil(z.right) {
		x = z.left
		bl.transplant(z, z.left)
	} else {
		y = bl.minimum(z.right)
		yOriginalColor = y.clr
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			bl.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		bl.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.clr = z.clr
	}

	if yOriginalColor == black {
		bl.removeFixup(x)
	}

	if !bl.isNil(z.prev) {
		z.prev.next = z.next
	}
	if !bl.isNil(z.next) {
		z.next.prev = z.prev
	}
}

func (bl *beachline) minimum(x *arc) *arc {
	for !bl.isNil(x.left) {
		x = x.left
	}
	return x
}

func (bl *beachline) transplant(u, v *arc) {
	if bl.isNil(u.parent) {
		bl.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

func (bl *beachline) leftRotate(x *arc) {
	y := x.right
	x.right = y.left
	if !bl.isNil(y.left) {
		y.left.parent = x
	}
	y.parent = x.parent
	if bl.isNil(x.parent) {
		bl.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (bl *beachline) rightRotate(y *arc) {
	x := y.left
	y.left = x.right
	if !bl.isNil(x.right) {
		x.right.parent = y
	}
	x.parent = y.parent
	if bl.isNil(y.parent) {
		bl.root = x
	} else if y == y.parent.left {
		y.parent.left = x
	} else {
		y.parent.right = x
	}
	x.right = y
	y.parent = x
}

func (bl *beachline) insertFixup(z *arc) {
	for z.parent.clr == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y.clr == red {
				z.parent.clr = black
				y.clr = black
				z.parent.parent.clr = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					bl.leftRotate(z)
				}
				z.parent.clr = black
				z.parent.parent.clr = red
				bl.rightRotate(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y.clr == red {
				z.parent.clr = black
				y.clr = black
				z.parent.parent.clr = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					bl.rightRotate(z)
				}
				z.parent.clr = black
				z.parent.parent.clr = red
				bl.leftRotate(z.parent.parent)
			}
		}
	}
	bl.root.clr = black
}

func (bl *beachline) removeFixup(x *arc) {
	for x != bl.root && x.clr == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.clr == red {
				w.clr = black
				x.parent.clr = red
				bl.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.clr == black && w.right.clr == black {
				w.clr = red
				x = x.parent
			} else {
				if w.right.clr == black {
					w.left.clr = black
					w.clr = red
					bl.rightRotate(w)
					w = x.parent.right
				}
				w.clr = x.parent.clr
				x.parent.clr = black
				w.right.clr = black
				bl.leftRotate(x.parent)
				x = bl.root
			}
		} else {
			w := x.parent.left
			if w.clr == red {
				w.clr = black
				x.parent.clr = red
				bl.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.clr == black && w.left.clr == black {
				w.clr = red
				x = x.parent
			} else {
				if w.left.clr == black {
					w.right.clr = black
					w.clr = red
					bl.leftRotate(w)
					w = x.parent.left
				}
				w.clr = x.parent.clr
				x.parent.clr = black
				w.left.clr = black
				bl.rightRotate(x.parent)
				x = bl.root
			}
		}
	}
	x.clr = black
}

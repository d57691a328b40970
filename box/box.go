// Package box implements an axis-aligned bounding box and the ray/segment
// intersection routines the fortune package uses to close off unbounded Voronoi
// cells against a finite boundary (spec.md §4.2).
package box

import (
	"fmt"
	"sort"

	"github.com/mikenye/voronoi/numeric"
	"github.com/mikenye/voronoi/options"
	"github.com/mikenye/voronoi/vector2"
)

// Side identifies one of the four walls of a Box.
//
// The values are deliberately ordered so that Side+1 (mod 4) walks the box
// boundary counterclockwise (y pointing up): LEFT -> BOTTOM -> RIGHT -> TOP -> LEFT. Several fortune
// package routines (box escape-ray stitching, clipper corner insertion) rely on
// this exact ordering (spec.md §4.6, §4.7, §9).
type Side uint8

const (
	Left Side = iota
	Bottom
	Right
	Top
)

// Next returns the side reached by walking the box boundary one step counterclockwise.
func (s Side) Next() Side {
	return (s + 1) % 4
}

// Prev returns the side reached by walking the box boundary one step clockwise.
func (s Side) Prev() Side {
	return (s + 3) % 4
}

func (s Side) String() string {
	switch s {
	case Left:
		return "Left"
	case Bottom:
		return "Bottom"
	case Right:
		return "Right"
	case Top:
		return "Top"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Box is an axis-aligned rectangle [Left,Right] x [Bottom,Top].
type Box struct {
	left, bottom, right, top float64
}

// New creates a Box from its four walls. The caller must ensure left <= right
// and bottom <= top; New does not reorder them (unlike rectangle.New in the
// teacher package) since a malformed box here indicates a caller bug worth
// surfacing rather than silently repairing.
func New(left, bottom, right, top float64) Box {
	return Box{left: left, bottom: bottom, right: right, top: top}
}

// Left returns the box's left wall.
func (b Box) Left() float64 { return b.left }

// Bottom returns the box's bottom wall.
func (b Box) Bottom() float64 { return b.bottom }

// Right returns the box's right wall.
func (b Box) Right() float64 { return b.right }

// Top returns the box's top wall.
func (b Box) Top() float64 { return b.top }

// Corner returns the box vertex associated with side per the clockwise-from-side
// convention in spec.md §4.3: LEFT->(left,top), BOTTOM->(left,bottom),
// RIGHT->(right,bottom), TOP->(right,top).
func (b Box) Corner(side Side) vector2.Vector2 {
	switch side {
	case Left:
		return vector2.New(b.left, b.top)
	case Bottom:
		return vector2.New(b.left, b.bottom)
	case Right:
		return vector2.New(b.right, b.bottom)
	case Top:
		return vector2.New(b.right, b.top)
	default:
		panic(fmt.Errorf("box: invalid side %d", side))
	}
}

func (b Box) String() string {
	return fmt.Sprintf("[%f,%f]x[%f,%f]", b.left, b.right, b.bottom, b.top)
}

// Contains reports whether p lies within the box, inclusive of the boundary, within
// an epsilon tolerance (default 0, i.e. exact).
func (b Box) Contains(p vector2.Vector2, opts ...options.VoronoiOptionsFunc) bool {
	o := options.Apply(options.VoronoiOptions{}, opts...)
	x, y := p.Coordinates()
	return numeric.FloatGreaterThanOrEqualTo(x, b.left, o.Epsilon) &&
		numeric.FloatLessThanOrEqualTo(x, b.right, o.Epsilon) &&
		numeric.FloatGreaterThanOrEqualTo(y, b.bottom, o.Epsilon) &&
		numeric.FloatLessThanOrEqualTo(y, b.top, o.Epsilon)
}

// Grow expands the box (if needed) so it contains p, returning the possibly-enlarged box.
// p's coordinates are first snapped to the nearest whole number within epsilon (see
// [numeric.SnapToEpsilon]), so a box grown to fit vertices computed by several chained
// floating-point operations (breakpoints, circumcenters) doesn't pick up a wall that's
// off by a few ULPs from the value the caller actually expects.
func (b Box) Grow(p vector2.Vector2, opts ...options.VoronoiOptionsFunc) Box {
	o := options.Apply(options.VoronoiOptions{}, opts...)
	x, y := p.Coordinates()
	x = numeric.SnapToEpsilon(x, o.Epsilon)
	y = numeric.SnapToEpsilon(y, o.Epsilon)
	return Box{
		left:   min(b.left, x),
		bottom: min(b.bottom, y),
		right:  max(b.right, x),
		top:    max(b.top, y),
	}
}

// FirstIntersection casts a ray from origin along direction (assumed nonzero) and
// returns the first wall it crosses and the crossing point, per spec.md §4.2: each
// axis is tested independently and the smaller non-negative candidate t wins.
func (b Box) FirstIntersection(origin, direction vector2.Vector2) (side Side, point vector2.Vector2, ok bool) {
	type candidate struct {
		side Side
		t    float64
	}
	var candidates []candidate

	dx, dy := direction.Coordinates()
	ox, oy := origin.Coordinates()

	if dx > 0 {
		candidates = append(candidates, candidate{Right, (b.right - ox) / dx})
	} else if dx < 0 {
		candidates = append(candidates, candidate{Left, (b.left - ox) / dx})
	}
	if dy > 0 {
		candidates = append(candidates, candidate{Top, (b.top - oy) / dy})
	} else if dy < 0 {
		candidates = append(candidates, candidate{Bottom, (b.bottom - oy) / dy})
	}

	best := -1
	for i, c := range candidates {
		if c.t < 0 {
			continue
		}
		if best == -1 || c.t < candidates[best].t {
			best = i
		}
	}
	if best == -1 {
		return 0, vector2.Vector2{}, false
	}
	t := candidates[best].t
	return candidates[best].side, origin.Add(direction.Scale(t)), true
}

// segIntersection is one candidate hit of a segment against a single box wall.
type segIntersection struct {
	side  Side
	point vector2.Vector2
	t     float64
}

// SegmentIntersections returns the intersections of the open segment (a,b) with the
// box boundary, per spec.md §4.2: a candidate t only counts if epsilon < t < 1-epsilon
// and the resulting point lies on the relevant side within epsilon. At most two are
// returned, in ascending t order.
func (b Box) SegmentIntersections(a, bPt vector2.Vector2, opts ...options.VoronoiOptionsFunc) []vector2.Vector2 {
	hits := b.segmentIntersections(a, bPt, opts...)
	out := make([]vector2.Vector2, len(hits))
	for i, h := range hits {
		out[i] = h.point
	}
	return out
}

// Intersection pairs a segment/box crossing point with the wall it crosses. The
// clipper (dcel.DCEL.Intersect, spec.md §4.7) needs the side as well as the point to
// decide which box walls to stitch between consecutive cuts.
type Intersection struct {
	Side  Side
	Point vector2.Vector2
}

// SegmentSideIntersections is SegmentIntersections but also reporting which wall each
// hit crosses, in the same ascending-t order.
func (b Box) SegmentSideIntersections(a, bPt vector2.Vector2, opts ...options.VoronoiOptionsFunc) []Intersection {
	hits := b.segmentIntersections(a, bPt, opts...)
	out := make([]Intersection, len(hits))
	for i, h := range hits {
		out[i] = Intersection{Side: h.side, Point: h.point}
	}
	return out
}

func (b Box) segmentIntersections(a, bPt vector2.Vector2, opts ...options.VoronoiOptionsFunc) []segIntersection {
	o := options.Apply(options.VoronoiOptions{}, opts...)
	eps := o.Epsilon

	ax, ay := a.Coordinates()
	bx, by := bPt.Coordinates()
	dx, dy := bx-ax, by-ay

	var hits []segIntersection

	addIfValid := func(side Side, t float64, p vector2.Vector2) {
		if !(t > eps && t < 1-eps) {
			return
		}
		hits = append(hits, segIntersection{side: side, point: p, t: t})
	}

	if dx != 0 {
		// Left wall: x == left
		t := (b.left - ax) / dx
		y := ay + t*dy
		if numeric.FloatGreaterThanOrEqualTo(y, b.bottom, eps) && numeric.FloatLessThanOrEqualTo(y, b.top, eps) {
			addIfValid(Left, t, vector2.New(b.left, y))
		}
		// Right wall: x == right
		t = (b.right - ax) / dx
		y = ay + t*dy
		if numeric.FloatGreaterThanOrEqualTo(y, b.bottom, eps) && numeric.FloatLessThanOrEqualTo(y, b.top, eps) {
			addIfValid(Right, t, vector2.New(b.right, y))
		}
	}
	if dy != 0 {
		// Bottom wall: y == bottom
		t := (b.bottom - ay) / dy
		x := ax + t*dx
		if numeric.FloatGreaterThanOrEqualTo(x, b.left, eps) && numeric.FloatLessThanOrEqualTo(x, b.right, eps) {
			addIfValid(Bottom, t, vector2.New(x, b.bottom))
		}
		// Top wall: y == top
		t = (b.top - ay) / dy
		x = ax + t*dx
		if numeric.FloatGreaterThanOrEqualTo(x, b.left, eps) && numeric.FloatLessThanOrEqualTo(x, b.right, eps) {
			addIfValid(Top, t, vector2.New(x, b.top))
		}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].t < hits[j].t })
	if len(hits) > 2 {
		hits = hits[:2]
	}
	return hits
}

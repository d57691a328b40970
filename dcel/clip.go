package dcel

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/mikenye/voronoi/box"
)

// Intersect clips every face's boundary against b, per spec.md §4.7. It assumes the
// DCEL has already been bounded (every half-edge has both endpoints set) and re-stitches
// each face's boundary to lie entirely within b, inserting box-wall edges and corner
// vertices where a face's cut points fall on different sides.
//
// It returns false if any half-edge's box-crossing count does not fit its case — 0 or 2
// for an edge with both endpoints outside, exactly 1 for an edge with one endpoint
// inside — a geometric anomaly (spec.md §7: recorded in a boolean status, not fatal). The
// diagram is left in a partially-clipped but still-consistent state in that case.
func (d *DCEL) Intersect(b box.Box) bool {
	processed := hashset.New()
	toRemove := hashset.New()
	ok := true

	for _, site := range d.sites {
		face := site.face
		start := face.outerComponent
		if start == nil {
			continue
		}

		he := start
		inside := b.Contains(he.origin.point)
		dirty := !inside
		var incoming, outgoing *HalfEdge
		var incomingSide, outgoingSide box.Side

		for {
			hits := b.SegmentSideIntersections(he.origin.point, he.destination.point)
			nextInside := b.Contains(he.destination.point)
			next := he.next

			switch {
			case !inside && !nextInside:
				switch len(hits) {
				case 0:
					toRemove.Add(he.origin)
					d.RemoveHalfEdge(he)
				case 2:
					toRemove.Add(he.origin)
					if processed.Contains(he.twin) {
						he.origin, he.destination = he.twin.destination, he.twin.origin
					} else {
						he.origin = d.CreateVertex(hits[0].Point)
						he.destination = d.CreateVertex(hits[1].Point)
					}
					if outgoing != nil {
						linkBoundary(d, b, outgoing, outgoingSide, he, hits[0].Side)
					}
					if incoming == nil {
						incoming, incomingSide = he, hits[0].Side
					}
					outgoing, outgoingSide = he, hits[1].Side
					processed.Add(he)
				default:
					ok = false
				}

			case inside && !nextInside:
				if len(hits) == 1 {
					if processed.Contains(he.twin) {
						he.destination = he.twin.origin
					} else {
						he.destination = d.CreateVertex(hits[0].Point)
					}
					outgoing, outgoingSide = he, hits[0].Side
					processed.Add(he)
				} else {
					ok = false
				}

			case !inside && nextInside:
				if len(hits) == 1 {
					toRemove.Add(he.origin)
					if processed.Contains(he.twin) {
						he.origin = he.twin.destination
					} else {
						he.origin = d.CreateVertex(hits[0].Point)
					}
					if outgoing != nil {
						linkBoundary(d, b, outgoing, outgoingSide, he, hits[0].Side)
					}
					if incoming == nil {
						incoming, incomingSide = he, hits[0].Side
					}
					processed.Add(he)
				} else {
					ok = false
				}
			}

			he = next
			inside = nextInside
			if he == start {
				break
			}
		}

		if dirty && incoming != nil {
			linkBoundary(d, b, outgoing, outgoingSide, incoming, incomingSide)
		}
		if dirty {
			face.SetOuterComponent(incoming)
		}
	}

	toRemove.Each(func(_ int, v interface{}) {
		d.RemoveVertex(v.(*Vertex))
	})

	return ok
}

// linkBoundary fills the box-wall half-edges between start's destination and end's
// origin, walking sides counterclockwise (Side.Next) from startSide to endSide and inserting a corner
// vertex at every side crossed in between (spec.md §4.6, §4.7).
func linkBoundary(d *DCEL, b box.Box, start *HalfEdge, startSide box.Side, end *HalfEdge, endSide box.Side) {
	he := start
	side := startSide
	for side != endSide {
		side = side.Next()
		next := d.CreateHalfEdge(start.incidentFace)
		he.SetNext(next)
		next.origin = he.destination
		next.destination = d.CreateCorner(b, side)
		he = next
	}
	next := d.CreateHalfEdge(start.incidentFace)
	he.SetNext(next)
	next.SetNext(end)
	next.origin = he.destination
	next.destination = end.origin
}

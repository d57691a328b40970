package fortune

import (
	"github.com/mikenye/voronoi/box"
	"github.com/mikenye/voronoi/dcel"
	"github.com/mikenye/voronoi/options"
)

// Diagram is the result of Construct: a DCEL plus whatever beachline state Bound
// needs to close off the still-unbounded cells left at the end of the sweep (spec.md
// §4.6's "termination and bounding").
type Diagram struct {
	dcel       *dcel.DCEL
	bl         *beachline
	bounded    bool
	boundedBox box.Box
}

// Sites returns every input site, in input order.
func (d *Diagram) Sites() []*dcel.Site { return d.dcel.Sites() }

// Faces returns every Voronoi cell, one per site, in site-index order.
func (d *Diagram) Faces() []*dcel.Face { return d.dcel.Faces() }

// Vertices returns the DCEL's current vertex set.
func (d *Diagram) Vertices() []*dcel.Vertex { return d.dcel.Vertices() }

// HalfEdges returns the DCEL's current half-edge set.
func (d *Diagram) HalfEdges() []*dcel.HalfEdge { return d.dcel.HalfEdges() }

// linkedVertex is one endpoint of a cut where a face's boundary crosses b's edge,
// threaded to the box-wall half-edge on either side of it once known (spec.md §4.6).
type linkedVertex struct {
	prev, next *dcel.HalfEdge
	vertex     *dcel.Vertex
}

// Bound closes every still-unbounded cell left at the end of the sweep against b,
// growing b first so it contains every vertex already computed (spec.md §4.6). It
// returns the (possibly grown) box actually used, since b's walls may need to expand
// to cover the diagram.
//
// Bound is idempotent (spec.md §8): once a diagram has been bounded, further calls
// return the box computed by the first call without touching the DCEL again, rather
// than re-stitching box-wall half-edges onto cells that already have them.
func (d *Diagram) Bound(b box.Box) box.Box {
	if d.bounded {
		return d.boundedBox
	}

	for _, v := range d.dcel.Vertices() {
		b = b.Grow(v.Point(), options.WithEpsilon(d.bl.eps))
	}

	n := len(d.dcel.Sites())
	cellLinks := make([][8]*linkedVertex, n)

	if !d.bl.isEmpty() {
		left := d.bl.leftmostArc()
		right := left.next
		for !d.bl.isNil(right) {
			direction := left.site.Point().Sub(right.site.Point()).Orthogonal()
			origin := left.site.Point().Add(right.site.Point()).Scale(0.5)

			side, point, ok := b.FirstIntersection(origin, direction)
			if ok {
				vertex := d.dcel.CreateVertex(point)
				setDestination(left, right, vertex)

				leftLV := &linkedVertex{vertex: vertex, next: left.rightHalfEdge}
				cellLinks[left.site.Index()][2*int(side)+1] = leftLV

				rightLV := &linkedVertex{vertex: vertex, prev: right.leftHalfEdge}
				cellLinks[right.site.Index()][2*int(side)] = rightLV
			}

			left = right
			right = right.next
		}
	}

	for i := range cellLinks {
		cv := &cellLinks[i]
		for step := 0; step < 5; step++ {
			side := step % 4
			nextSide := (side + 1) % 4
			switch {
			case cv[2*side] == nil && cv[2*side+1] != nil:
				prevSide := (side + 3) % 4
				corner := d.dcel.CreateCorner(b, box.Side(side))
				lv := &linkedVertex{vertex: corner}
				cv[2*prevSide+1] = lv
				cv[2*side] = lv
			case cv[2*side] != nil && cv[2*side+1] == nil:
				corner := d.dcel.CreateCorner(b, box.Side(nextSide))
				lv := &linkedVertex{vertex: corner}
				cv[2*side+1] = lv
				cv[2*nextSide] = lv
			}
		}
	}

	faces := d.dcel.Faces()
	for i, cv := range cellLinks {
		face := faces[i]
		for side := 0; side < 4; side++ {
			if cv[2*side] == nil {
				continue
			}
			he := d.dcel.CreateHalfEdge(face)
			he.SetOrigin(cv[2*side].vertex)
			he.SetDestination(cv[2*side+1].vertex)
			he.SetPrev(cv[2*side].prev)
			he.SetNext(cv[2*side+1].next)
			cv[2*side].next = he
			cv[2*side+1].prev = he
		}
	}

	d.bounded = true
	d.boundedBox = b
	return b
}

// Intersect clips the diagram to b, which must be no larger than the box used to Bound
// it (spec.md §4.7). It returns ErrNotBounded if called before Bound, and false (with a
// nil error) if a geometric anomaly was encountered while walking some face's boundary
// — the diagram is still usable, just not perfectly clipped (spec.md §7).
func (d *Diagram) Intersect(b box.Box) (bool, error) {
	if !d.bounded {
		return false, ErrNotBounded
	}
	return d.dcel.Intersect(b), nil
}

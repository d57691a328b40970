// Package dcel implements the doubly connected edge list that Fortune's algorithm builds
// incrementally and that the clipper (spec.md §4.7) closes against a bounding box.
//
// The record shapes (vertexRecord/halfEdgeRecord/faceRecord-style pointer graphs, rather
// than arena indices) follow the same convention used by the DCEL in
// missinglink-simplefeatures's geom package: Go's garbage collector makes reference
// cycles free, so the arena-of-indices representation spec.md §9 recommends for
// non-GC'd languages buys nothing here beyond extra indirection.
package dcel

import (
	"github.com/mikenye/voronoi/box"
	"github.com/mikenye/voronoi/vector2"
)

// Site is one input point. Sites are immutable after DCEL construction: index is
// insertion order and never changes, and Face is assigned once during construction.
type Site struct {
	index int
	point vector2.Vector2
	face  *Face
}

// Index returns the site's position in the original input order.
func (s *Site) Index() int { return s.index }

// Point returns the site's location.
func (s *Site) Point() vector2.Vector2 { return s.point }

// Face returns the Voronoi cell belonging to this site.
func (s *Site) Face() *Face { return s.face }

// Face is one Voronoi cell, corresponding to exactly one Site.
type Face struct {
	site           *Site
	outerComponent *HalfEdge
}

// Site returns the site this face's cell belongs to.
func (f *Face) Site() *Site { return f.site }

// OuterComponent returns a half-edge on the face's boundary, or nil if the face has no
// edges yet (e.g. before the sweep has reached far enough to bound it).
func (f *Face) OuterComponent() *HalfEdge { return f.outerComponent }

// SetOuterComponent overwrites the face's boundary reference. Used by the clipper
// (spec.md §4.7) to repoint a face at its first incoming cut once the boundary has been
// re-stitched against a box.
func (f *Face) SetOuterComponent(h *HalfEdge) { f.outerComponent = h }

// HalfEdges walks the face's boundary starting at OuterComponent, following next until
// it returns to the start. The boundary must already form a closed cycle (true once
// bound/intersect has run); calling this on a still-open cell panics rather than looping
// forever.
func (f *Face) HalfEdges() func(yield func(*HalfEdge) bool) {
	return func(yield func(*HalfEdge) bool) {
		start := f.outerComponent
		if start == nil {
			return
		}
		e := start
		for {
			if !yield(e) {
				return
			}
			e = e.next
			if e == nil {
				panic("dcel: face boundary is not a closed cycle")
			}
			if e == start {
				return
			}
		}
	}
}

// Vertex is a point shared by two or more half-edges.
type Vertex struct {
	point vector2.Vector2
	idx   int // position in DCEL.vertices, maintained for O(1) RemoveVertex
}

// Point returns the vertex's location.
func (v *Vertex) Point() vector2.Vector2 { return v.point }

// HalfEdge is a directed edge of the planar subdivision. Origin and/or Destination may
// be nil while the edge is still growing during the sweep; a twin pair created at a
// site event starts with neither set.
type HalfEdge struct {
	origin, destination *Vertex
	twin                *HalfEdge
	incidentFace        *Face
	prev, next          *HalfEdge
	idx                 int // position in DCEL.halfEdges, maintained for O(1) RemoveHalfEdge
}

// Origin returns the edge's start vertex, or nil if not yet set.
func (h *HalfEdge) Origin() *Vertex { return h.origin }

// SetOrigin sets the edge's start vertex.
func (h *HalfEdge) SetOrigin(v *Vertex) { h.origin = v }

// Destination returns the edge's end vertex, or nil if not yet set.
func (h *HalfEdge) Destination() *Vertex { return h.destination }

// SetDestination sets the edge's end vertex.
func (h *HalfEdge) SetDestination(v *Vertex) { h.destination = v }

// Twin returns the other half of this edge's twin pair.
func (h *HalfEdge) Twin() *HalfEdge { return h.twin }

// IncidentFace returns the face this half-edge bounds.
func (h *HalfEdge) IncidentFace() *Face { return h.incidentFace }

// Prev returns the previous half-edge around IncidentFace's boundary.
func (h *HalfEdge) Prev() *HalfEdge { return h.prev }

// SetPrev sets the previous half-edge around IncidentFace's boundary, updating the
// reverse link too.
func (h *HalfEdge) SetPrev(p *HalfEdge) {
	h.prev = p
	if p != nil {
		p.next = h
	}
}

// Next returns the next half-edge around IncidentFace's boundary.
func (h *HalfEdge) Next() *HalfEdge { return h.next }

// SetNext sets the next half-edge around IncidentFace's boundary, updating the reverse
// link too.
func (h *HalfEdge) SetNext(n *HalfEdge) {
	h.next = n
	if n != nil {
		n.prev = h
	}
}

// DCEL owns every site, face, vertex and half-edge produced while constructing a
// Voronoi diagram. Dropping the DCEL (letting it become unreachable) releases
// everything it owns; there is no explicit Close.
type DCEL struct {
	sites     []*Site
	faces     []*Face
	vertices  []*Vertex
	halfEdges []*HalfEdge
}

// New creates a DCEL with one Site/Face pair per input point, in input order. Site
// indices are dense [0,n).
func New(points []vector2.Vector2) *DCEL {
	d := &DCEL{
		sites: make([]*Site, len(points)),
		faces: make([]*Face, len(points)),
	}
	for i, p := range points {
		face := &Face{}
		site := &Site{index: i, point: p, face: face}
		face.site = site
		d.sites[i] = site
		d.faces[i] = face
	}
	return d
}

// Sites returns every site, in input order.
func (d *DCEL) Sites() []*Site { return d.sites }

// Faces returns every face, one per site, in site-index order.
func (d *DCEL) Faces() []*Face { return d.faces }

// Vertices returns the live vertex set. Order is not meaningful (vertices can be
// removed via swap-with-last) and callers should not rely on index stability across
// RemoveVertex calls.
func (d *DCEL) Vertices() []*Vertex { return d.vertices }

// HalfEdges returns the live half-edge set (see Vertices' ordering caveat).
func (d *DCEL) HalfEdges() []*HalfEdge { return d.halfEdges }

// CreateVertex allocates a new vertex at point and appends it to the DCEL's vertex list.
func (d *DCEL) CreateVertex(point vector2.Vector2) *Vertex {
	v := &Vertex{point: point, idx: len(d.vertices)}
	d.vertices = append(d.vertices, v)
	logDebugf("created vertex %s", point)
	return v
}

// CreateHalfEdge allocates a new half-edge incident to face and appends it to the
// DCEL's half-edge list. If face doesn't yet have an OuterComponent, this edge becomes
// it (spec.md §4.3).
func (d *DCEL) CreateHalfEdge(face *Face) *HalfEdge {
	h := &HalfEdge{incidentFace: face, idx: len(d.halfEdges)}
	d.halfEdges = append(d.halfEdges, h)
	if face != nil && face.outerComponent == nil {
		face.outerComponent = h
	}
	return h
}

// CreateTwins allocates a twin pair of half-edges, one incident to faceA and the other
// to faceB, and links them to each other.
func (d *DCEL) CreateTwins(faceA, faceB *Face) (a, b *HalfEdge) {
	a = d.CreateHalfEdge(faceA)
	b = d.CreateHalfEdge(faceB)
	a.twin = b
	b.twin = a
	return a, b
}

// CreateCorner creates a vertex at the box corner paired with side, using the mapping
// in spec.md §4.3: this pairs each side with the corner reached by walking the box
// boundary clockwise from that side's start, which is the convention §4.6 and §4.7
// depend on for stitching box-boundary edges.
func (d *DCEL) CreateCorner(b box.Box, side box.Side) *Vertex {
	return d.CreateVertex(b.Corner(side))
}

// RemoveVertex unlinks v from the DCEL's vertex list in O(1) via swap-with-last.
func (d *DCEL) RemoveVertex(v *Vertex) {
	if v.idx < 0 || v.idx >= len(d.vertices) || d.vertices[v.idx] != v {
		return
	}
	last := len(d.vertices) - 1
	d.vertices[v.idx] = d.vertices[last]
	d.vertices[v.idx].idx = v.idx
	d.vertices = d.vertices[:last]
	v.idx = -1
}

// RemoveHalfEdge unlinks h from the DCEL's half-edge list in O(1) via swap-with-last.
func (d *DCEL) RemoveHalfEdge(h *HalfEdge) {
	if h.idx < 0 || h.idx >= len(d.halfEdges) || d.halfEdges[h.idx] != h {
		return
	}
	last := len(d.halfEdges) - 1
	d.halfEdges[h.idx] = d.halfEdges[last]
	d.halfEdges[h.idx].idx = h.idx
	d.halfEdges = d.halfEdges[:last]
	h.idx = -1
}

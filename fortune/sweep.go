package fortune

import (
	"math"

	"github.com/mikenye/voronoi/box"
	"github.com/mikenye/voronoi/dcel"
	"github.com/mikenye/voronoi/options"
	"github.com/mikenye/voronoi/vector2"
)

// algorithm holds the transient state of one sweep: the DCEL under construction, the
// beachline, and the event queue. It exists only for the duration of Construct; once
// the queue empties, its dcel and beachline are handed off to a Diagram for Bound and
// Intersect (spec.md §5: "dropping the instance releases all nodes").
type algorithm struct {
	d      *dcel.DCEL
	bl     *beachline
	events eventQueue
	sweepY float64
	opts   options.VoronoiOptions
}

// Construct builds the Voronoi diagram's DCEL for the given sites by running Fortune's
// sweep to completion (spec.md §4.6). The diagram's edges are unbounded until Bound or
// Intersect runs. Construct returns ErrDuplicateSite if two sites coincide exactly.
func Construct(sites []vector2.Vector2, opts ...options.VoronoiOptionsFunc) (*Diagram, error) {
	o := options.Apply(options.VoronoiOptions{Epsilon: options.DefaultEpsilon}, opts...)

	if err := checkDuplicateSites(sites); err != nil {
		return nil, err
	}

	a := &algorithm{
		d:    dcel.New(sites),
		bl:   newBeachline(o.Epsilon),
		opts: o,
	}

	for _, site := range a.d.Sites() {
		a.events.push(newSiteEvent(site))
	}

	for a.events.Len() > 0 {
		e := a.events.pop()
		a.sweepY = e.y
		logDebugf("pop %s", e)
		if e.kind == eventSite {
			a.handleSiteEvent(e.site)
		} else {
			a.handleCircleEvent(e)
		}
	}

	return &Diagram{dcel: a.d, bl: a.bl}, nil
}

// Build constructs the diagram and immediately bounds it against b, the common case
// (spec.md §4.6's termination step run right after the sweep). Callers that need to
// clip against a second, smaller box afterward should call Construct and Bound/Intersect
// directly instead.
func Build(sites []vector2.Vector2, b box.Box, opts ...options.VoronoiOptionsFunc) (*Diagram, error) {
	d, err := Construct(sites, opts...)
	if err != nil {
		return nil, err
	}
	d.Bound(b)
	return d, nil
}

func (a *algorithm) handleSiteEvent(site *dcel.Site) {
	if a.bl.isEmpty() {
		a.bl.setRoot(a.bl.newArc(site))
		return
	}

	arcToBreak := a.bl.locateArcAbove(site.Point(), a.sweepY)
	a.deleteEvent(arcToBreak)

	middle := a.breakArc(arcToBreak, site)
	left := middle.prev
	right := middle.next

	a.addEdge(left, middle)
	middle.rightHalfEdge = middle.leftHalfEdge
	right.leftHalfEdge = left.rightHalfEdge

	if !a.bl.isNil(left.prev) {
		a.addEvent(left.prev, left, middle)
	}
	if !a.bl.isNil(right.next) {
		a.addEvent(middle, right, right.next)
	}
}

func (a *algorithm) breakArc(toBreak *arc, site *dcel.Site) *arc {
	middle := a.bl.newArc(site)
	left := a.bl.newArc(toBreak.site)
	left.leftHalfEdge = toBreak.leftHalfEdge
	right := a.bl.newArc(toBreak.site)
	right.rightHalfEdge = toBreak.rightHalfEdge

	a.bl.replace(toBreak, middle)
	a.bl.insertBefore(middle, left)
	a.bl.insertAfter(middle, right)
	return middle
}

// addEdge creates a new twin pair of half-edges for the growing breakpoint between left
// and right, incident to each arc's own site face (spec.md §4.6 step 4).
func (a *algorithm) addEdge(left, right *arc) {
	left.rightHalfEdge, right.leftHalfEdge = a.d.CreateTwins(left.site.Face(), right.site.Face())
}

func (a *algorithm) handleCircleEvent(e *event) {
	vertex := a.d.CreateVertex(e.point)
	arc := e.arc

	left := arc.prev
	right := arc.next
	a.deleteEvent(left)
	a.deleteEvent(right)

	a.removeArc(arc, vertex)

	if !a.bl.isNil(left.prev) {
		a.addEvent(left.prev, left, right)
	}
	if !a.bl.isNil(right.next) {
		a.addEvent(left, right, right.next)
	}
}

func (a *algorithm) removeArc(ar *arc, vertex *dcel.Vertex) {
	setDestination(ar.prev, ar, vertex)
	setDestination(ar, ar.next, vertex)

	ar.leftHalfEdge.SetNext(ar.rightHalfEdge)

	a.bl.remove(ar)

	prevHalfEdge := ar.prev.rightHalfEdge
	nextHalfEdge := ar.next.leftHalfEdge

	a.addEdge(ar.prev, ar.next)
	setOrigin(ar.prev, ar.next, vertex)

	ar.prev.rightHalfEdge.SetNext(prevHalfEdge)
	nextHalfEdge.SetNext(ar.next.leftHalfEdge)
}

// setOrigin terminates the breakpoint edges between left and right at vertex, treating
// it as their shared origin (spec.md §4.6 step 5).
func setOrigin(left, right *arc, vertex *dcel.Vertex) {
	left.rightHalfEdge.SetDestination(vertex)
	right.leftHalfEdge.SetOrigin(vertex)
}

// setDestination is setOrigin's mirror, used when vertex is reached walking the other
// direction (spec.md §4.6 step 3).
func setDestination(left, right *arc, vertex *dcel.Vertex) {
	left.rightHalfEdge.SetOrigin(vertex)
	right.leftHalfEdge.SetDestination(vertex)
}

func isMovingRight(left, right *arc) bool {
	return left.site.Point().Y() < right.site.Point().Y()
}

func initialX(left, right *arc, movingRight bool) float64 {
	if movingRight {
		return left.site.Point().X()
	}
	return right.site.Point().X()
}

// computeConvergencePoint returns the y at which the sweep line reaches the
// circumcenter of p1, p2, p3 (taken in beachline left-to-right order), and the
// circumcenter itself (spec.md §4.6, "scheduling a circle event").
func computeConvergencePoint(p1, p2, p3 vector2.Vector2) (y float64, center vector2.Vector2) {
	v1 := p1.Sub(p2).Orthogonal()
	v2 := p2.Sub(p3).Orthogonal()
	delta := p3.Sub(p1).Scale(0.5)

	denom := vector2.Det(v1, v2)
	t := vector2.Det(delta, v2) / denom

	center = p1.Add(p2).Scale(0.5).Add(v1.Scale(t))
	r := center.DistanceTo(p1)
	return center.Y() - r, center
}

// addEvent tests the triple (left, middle, right) for a valid, not-yet-passed circle
// event and, if valid, schedules it and attaches it to middle.event (spec.md §4.6).
func (a *algorithm) addEvent(left, middle, right *arc) {
	y, center := computeConvergencePoint(left.site.Point(), middle.site.Point(), right.site.Point())
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return
	}
	isBelow := y <= a.sweepY

	leftMovingRight := isMovingRight(left, middle)
	rightMovingRight := isMovingRight(middle, right)
	leftInitialX := initialX(left, middle, leftMovingRight)
	rightInitialX := initialX(middle, right, rightMovingRight)

	valid := ((leftMovingRight && leftInitialX < center.X()) || (!leftMovingRight && leftInitialX > center.X())) &&
		((rightMovingRight && rightInitialX < center.X()) || (!rightMovingRight && rightInitialX > center.X()))

	if valid && isBelow {
		e := newCircleEvent(y, center, middle)
		middle.event = e
		a.events.push(e)
	}
}

func (a *algorithm) deleteEvent(ar *arc) {
	if ar.event != nil {
		a.events.removeAt(ar.event)
		ar.event = nil
	}
}

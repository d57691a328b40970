package fortune

import (
	"container/heap"
	"fmt"

	"github.com/mikenye/voronoi/dcel"
	"github.com/mikenye/voronoi/vector2"
)

type eventKind uint8

const (
	eventSite eventKind = iota
	eventCircle
)

// event is a site or circle event, ordered by y (spec.md §3). index tracks its
// current position in the eventQueue heap so a pending event can be invalidated in
// O(log n) when the arc it would remove gets a new neighbor (spec.md §4.4).
type event struct {
	kind eventKind
	y    float64

	site *dcel.Site // set for eventSite

	point vector2.Vector2 // set for eventCircle: the prospective Voronoi vertex
	arc   *arc            // set for eventCircle: the arc that would disappear

	index int
}

func newSiteEvent(s *dcel.Site) *event {
	return &event{kind: eventSite, y: s.Point().Y(), site: s}
}

func newCircleEvent(y float64, point vector2.Vector2, middle *arc) *event {
	return &event{kind: eventCircle, y: y, point: point, arc: middle}
}

func (e *event) String() string {
	if e.kind == eventSite {
		return fmt.Sprintf("site(%d, y=%f)", e.site.Index(), e.y)
	}
	return fmt.Sprintf("circle(y=%f, %s)", e.y, e.point)
}

// eventQueue is a binary max-heap on y (spec.md §4.4: the sweep processes the largest y
// first). It implements container/heap.Interface as a slice of pointers plus an index
// field kept current by Swap, so heap.Remove/heap.Fix can target an arbitrary pending
// event by its cached position rather than only the root.
type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool { return q[i].y > q[j].y }

func (q eventQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *eventQueue) Push(x any) {
	e := x.(*event)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}

func (q *eventQueue) push(e *event) { heap.Push(q, e) }

func (q *eventQueue) pop() *event { return heap.Pop(q).(*event) }

func (q *eventQueue) removeAt(e *event) { heap.Remove(q, e.index) }

func (q *eventQueue) update(e *event) { heap.Fix(q, e.index) }

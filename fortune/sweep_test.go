package fortune

import (
	"testing"

	"github.com/mikenye/voronoi/box"
	"github.com/mikenye/voronoi/options"
	"github.com/mikenye/voronoi/vector2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertEulerFormula checks V - E/2 + F = 2 for a fully-bounded, connected diagram,
// where F counts every cell plus the unbounded outer face (spec.md §8).
func assertEulerFormula(t *testing.T, d *Diagram) {
	t.Helper()
	v := len(d.Vertices())
	e := len(d.HalfEdges())
	f := len(d.Faces()) + 1
	assert.Equal(t, 2, v-e/2+f, "Euler's formula should hold: V=%d E=%d F=%d", v, e, f)
}

// assertTwinSymmetry checks h.twin.twin==h and endpoints are swapped (spec.md §8).
func assertTwinSymmetry(t *testing.T, d *Diagram) {
	t.Helper()
	for _, h := range d.HalfEdges() {
		require.NotNil(t, h.Twin())
		assert.Same(t, h, h.Twin().Twin())
		if h.Origin() != nil && h.Twin().Destination() != nil {
			assert.Same(t, h.Origin(), h.Twin().Destination())
		}
		if h.Destination() != nil && h.Twin().Origin() != nil {
			assert.Same(t, h.Destination(), h.Twin().Origin())
		}
	}
}

// assertFaceCyclesCloseUp checks following next from any half-edge returns to itself,
// and that every edge in the cycle shares incident_face (spec.md §8).
func assertFaceCyclesCloseUp(t *testing.T, d *Diagram) {
	t.Helper()
faces:
	for _, face := range d.Faces() {
		start := face.OuterComponent()
		if start == nil {
			continue
		}
		h := start
		for i := 0; i < 10000; i++ {
			assert.Same(t, face, h.IncidentFace())
			h = h.Next()
			if h == start {
				continue faces
			}
		}
		t.Fatalf("face boundary for site %d did not close within bound", face.Site().Index())
	}
}

func TestConstruct_TwoSites(t *testing.T) {
	sites := []vector2.Vector2{vector2.New(0, 0), vector2.New(2, 0)}
	d, err := Construct(sites)
	require.NoError(t, err)

	// zero Voronoi vertices before bound (spec.md §8 scenario 2)
	assert.Empty(t, d.Vertices())

	b := d.Bound(box.New(-1, -1, 3, 1))
	assertTwinSymmetry(t, d)
	// the two ends of the x=1 edge on the box, plus the four box corners
	require.Len(t, d.Vertices(), 6)

	ok, err := d.Intersect(b)
	require.NoError(t, err)
	assert.True(t, ok)
	assertFaceCyclesCloseUp(t, d)
	assertEulerFormula(t, d)
}

func TestConstruct_Triangle(t *testing.T) {
	sites := []vector2.Vector2{
		vector2.New(0, 0),
		vector2.New(4, 0),
		vector2.New(2, 3),
	}
	d, err := Construct(sites)
	require.NoError(t, err)

	require.Len(t, d.Vertices(), 1)
	v := d.Vertices()[0]
	assert.InDelta(t, 2.0, v.Point().X(), 1e-6)
	assert.InDelta(t, 5.0/6.0, v.Point().Y(), 1e-6)

	b := d.Bound(box.New(-10, -10, 10, 10))
	ok, err := d.Intersect(b)
	require.NoError(t, err)
	assert.True(t, ok)

	assertTwinSymmetry(t, d)
	assertFaceCyclesCloseUp(t, d)
	assertEulerFormula(t, d)

	for _, face := range d.Faces() {
		count := 0
		for range face.HalfEdges() {
			count++
		}
		assert.Greater(t, count, 0, "every face must touch the box boundary after bound")
	}
}

func TestConstruct_Square(t *testing.T) {
	sites := []vector2.Vector2{
		vector2.New(0, 0),
		vector2.New(2, 0),
		vector2.New(0, 2),
		vector2.New(2, 2),
	}
	d, err := Construct(sites)
	require.NoError(t, err)

	require.Len(t, d.Vertices(), 1)
	v := d.Vertices()[0]
	assert.InDelta(t, 1.0, v.Point().X(), 1e-6)
	assert.InDelta(t, 1.0, v.Point().Y(), 1e-6)

	b := d.Bound(box.New(-10, -10, 10, 10))
	ok, err := d.Intersect(b)
	require.NoError(t, err)
	assert.True(t, ok)

	assertTwinSymmetry(t, d)
	assertFaceCyclesCloseUp(t, d)
	assertEulerFormula(t, d)
}

func TestConstruct_CollinearTrio(t *testing.T) {
	sites := []vector2.Vector2{
		vector2.New(0, 0),
		vector2.New(1, 0),
		vector2.New(2, 0),
	}
	d, err := Construct(sites)
	require.NoError(t, err)

	// no finite Voronoi vertex (spec.md §8 scenario 4)
	assert.Empty(t, d.Vertices())

	b := d.Bound(box.New(-5, -5, 5, 5))
	assertTwinSymmetry(t, d)

	ok, err := d.Intersect(b)
	require.NoError(t, err)
	assert.True(t, ok)
	assertFaceCyclesCloseUp(t, d)
	assertEulerFormula(t, d)
}

func TestConstruct_FiveSites_Stress(t *testing.T) {
	sites := []vector2.Vector2{
		vector2.New(0, 0),
		vector2.New(5, 1),
		vector2.New(2, 4),
		vector2.New(-3, 2),
		vector2.New(1, -4),
	}
	d, err := Construct(sites)
	require.NoError(t, err)

	b := d.Bound(box.New(-20, -20, 20, 20))
	ok, err := d.Intersect(b)
	require.NoError(t, err)
	assert.True(t, ok)

	assertTwinSymmetry(t, d)
	assertFaceCyclesCloseUp(t, d)
	assertEulerFormula(t, d)

	// empty-circle property, sampled: every vertex on a face's boundary must be no
	// closer to any other site than to that face's own site.
	for _, h := range d.HalfEdges() {
		if h.Origin() == nil {
			continue
		}
		p := h.Origin().Point()
		own := p.DistanceTo(h.IncidentFace().Site().Point())
		for _, s := range d.Sites() {
			assert.True(t, own <= p.DistanceTo(s.Point())+1e-6)
		}
	}
}

func TestBuild_ConstructsAndBounds(t *testing.T) {
	sites := []vector2.Vector2{
		vector2.New(0, 0),
		vector2.New(2, 0),
		vector2.New(0, 2),
		vector2.New(2, 2),
	}
	b := box.New(-10, -10, 10, 10)
	d, err := Build(sites, b)
	require.NoError(t, err)
	// the central Voronoi vertex, four edge ends on the box and four box corners
	require.Len(t, d.Vertices(), 9)

	ok, err := d.Intersect(b)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConstruct_DuplicateSites_ReturnsError(t *testing.T) {
	sites := []vector2.Vector2{
		vector2.New(1, 1),
		vector2.New(2, 2),
		vector2.New(1, 1),
	}
	_, err := Construct(sites)
	assert.ErrorIs(t, err, ErrDuplicateSite)
}

func TestConstruct_EmptyInput_IsNoOp(t *testing.T) {
	d, err := Construct(nil)
	require.NoError(t, err)
	assert.Empty(t, d.Sites())
	assert.Empty(t, d.Faces())
	assert.Empty(t, d.Vertices())

	b := d.Bound(box.New(0, 0, 1, 1))
	ok, err := d.Intersect(b)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDiagram_Intersect_BeforeBound_ReturnsError(t *testing.T) {
	d, err := Construct([]vector2.Vector2{vector2.New(0, 0), vector2.New(1, 1)})
	require.NoError(t, err)

	_, err = d.Intersect(box.New(0, 0, 1, 1))
	assert.ErrorIs(t, err, ErrNotBounded)
}

func TestDiagram_Bound_IsIdempotent(t *testing.T) {
	sites := []vector2.Vector2{
		vector2.New(0, 0),
		vector2.New(4, 0),
		vector2.New(2, 3),
	}
	d, err := Construct(sites)
	require.NoError(t, err)

	b := box.New(-10, -10, 10, 10)
	first := d.Bound(b)
	wantVertices := len(d.Vertices())
	wantEdges := len(d.HalfEdges())
	wantFaces := len(d.Faces())

	second := d.Bound(b)
	assert.Equal(t, first, second, "bounding twice with the same box should return the same box")
	assert.Len(t, d.Vertices(), wantVertices, "vertex count must not change on a repeat Bound call")
	assert.Len(t, d.HalfEdges(), wantEdges, "half-edge count must not change on a repeat Bound call")
	assert.Len(t, d.Faces(), wantFaces, "face count must not change on a repeat Bound call")

	ok, err := d.Intersect(second)
	require.NoError(t, err)
	assert.True(t, ok)
	assertTwinSymmetry(t, d)
	assertFaceCyclesCloseUp(t, d)
	assertEulerFormula(t, d)
}

// vertexPointSet collects a diagram's Voronoi vertex coordinates into a
// comparable, order-independent set rounded to a fixed precision.
func vertexPointSet(d *Diagram) map[[2]int64]struct{} {
	const scale = 1e6
	out := make(map[[2]int64]struct{}, len(d.Vertices()))
	for _, v := range d.Vertices() {
		p := v.Point()
		key := [2]int64{int64(p.X() * scale), int64(p.Y() * scale)}
		out[key] = struct{}{}
	}
	return out
}

func TestConstruct_PermutationInvariant(t *testing.T) {
	orderings := [][]vector2.Vector2{
		{vector2.New(0, 0), vector2.New(2, 0), vector2.New(0, 2), vector2.New(2, 2)},
		{vector2.New(2, 2), vector2.New(0, 0), vector2.New(2, 0), vector2.New(0, 2)},
		{vector2.New(0, 2), vector2.New(2, 2), vector2.New(2, 0), vector2.New(0, 0)},
	}

	var want map[[2]int64]struct{}
	for i, sites := range orderings {
		d, err := Construct(sites)
		require.NoError(t, err)
		got := vertexPointSet(d)
		if i == 0 {
			want = got
			require.NotEmpty(t, want)
			continue
		}
		assert.Equal(t, want, got, "permuting input sites must not change the resulting Voronoi vertex set")
	}
}

func TestIntersect_ClipToSmallerBox(t *testing.T) {
	sites := []vector2.Vector2{
		vector2.New(0, 0),
		vector2.New(2, 0),
		vector2.New(0, 2),
		vector2.New(2, 2),
	}
	d, err := Build(sites, box.New(-10, -10, 10, 10))
	require.NoError(t, err)

	small := box.New(0.5, 0.5, 1.5, 1.5)
	ok, err := d.Intersect(small)
	require.NoError(t, err)
	assert.True(t, ok)

	for _, v := range d.Vertices() {
		assert.True(t, small.Contains(v.Point(), options.WithEpsilon(1e-6)))
	}

	assertTwinSymmetry(t, d)
	assertFaceCyclesCloseUp(t, d)
}

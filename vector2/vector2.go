// Package vector2 defines the foundational 2D primitive used throughout the module: a
// float64 point/vector pair. Every other geometric type (box, dcel, fortune) is built on it.
//
// # Overview
//
// Vector2 does double duty as both a point in the plane and the vector from the origin to
// that point, following the convention used throughout computational-geometry literature
// (and spec.md §4.1). It supports the small set of operations Fortune's algorithm needs:
// addition, subtraction, scaling, the 90°-counterclockwise orthogonal, the 2D determinant,
// and Euclidean distance.
package vector2

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mikenye/voronoi/numeric"
	"github.com/mikenye/voronoi/options"
)

// Vector2 represents a point or vector in two-dimensional space with float64 coordinates.
type Vector2 struct {
	x float64
	y float64
}

// New creates a new Vector2 with the given coordinates.
func New(x, y float64) Vector2 {
	return Vector2{x: x, y: y}
}

// X returns the x-coordinate.
func (v Vector2) X() float64 { return v.x }

// Y returns the y-coordinate.
func (v Vector2) Y() float64 { return v.y }

// Coordinates returns the x and y coordinates as separate values.
func (v Vector2) Coordinates() (x, y float64) { return v.x, v.y }

// Add returns the component-wise sum of v and q.
func (v Vector2) Add(q Vector2) Vector2 {
	return Vector2{x: v.x + q.x, y: v.y + q.y}
}

// Sub returns the vector from q to v, i.e. v minus q.
func (v Vector2) Sub(q Vector2) Vector2 {
	return Vector2{x: v.x - q.x, y: v.y - q.y}
}

// Scale returns v scaled by factor k.
func (v Vector2) Scale(k float64) Vector2 {
	return Vector2{x: v.x * k, y: v.y * k}
}

// Negate returns the vector pointing the opposite direction.
func (v Vector2) Negate() Vector2 {
	return Vector2{x: -v.x, y: -v.y}
}

// Orthogonal returns v rotated 90 degrees counterclockwise: (-y, x).
//
// Used by the circumcircle construction (spec §4.6) and by bound's box-escape rays, which
// shoot perpendicular to the line joining two sites.
func (v Vector2) Orthogonal() Vector2 {
	return Vector2{x: -v.y, y: v.x}
}

// Det returns the 2D determinant (a.k.a. the z-component of the 3D cross product) of a and
// b: a.x*b.y - a.y*b.x. A positive result means b is counterclockwise from a.
func Det(a, b Vector2) float64 {
	return a.x*b.y - a.y*b.x
}

// Dot returns the dot product of v and q.
func (v Vector2) Dot(q Vector2) float64 {
	return v.x*q.x + v.y*q.y
}

// DistanceTo returns the Euclidean distance between v and q.
func (v Vector2) DistanceTo(q Vector2) float64 {
	return math.Sqrt(v.DistanceSquaredTo(q))
}

// DistanceSquaredTo returns the squared Euclidean distance between v and q, avoiding the
// square root when only relative comparisons are needed.
func (v Vector2) DistanceSquaredTo(q Vector2) float64 {
	dx, dy := q.x-v.x, q.y-v.y
	return dx*dx + dy*dy
}

// Eq reports whether v and q are equal, optionally within an epsilon tolerance (see
// [options.WithEpsilon]). Without an epsilon option, comparison is exact.
func (v Vector2) Eq(q Vector2, opts ...options.VoronoiOptionsFunc) bool {
	o := options.Apply(options.VoronoiOptions{}, opts...)
	return numeric.FloatEquals(v.x, q.x, o.Epsilon) && numeric.FloatEquals(v.y, q.y, o.Epsilon)
}

// String returns a human-readable "(x,y)" representation of v.
func (v Vector2) String() string {
	return fmt.Sprintf("(%f,%f)", v.x, v.y)
}

// MarshalJSON serializes Vector2 as {"x":..., "y":...}.
func (v Vector2) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: v.x, Y: v.y})
}

// UnmarshalJSON deserializes a Vector2 from {"x":..., "y":...}.
func (v *Vector2) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	v.x, v.y = temp.X, temp.Y
	return nil
}

// Package options provides a functional-options pattern for configuring the epsilon
// tolerance used throughout vector2, box, dcel and fortune.
//
// Functions that accept a VoronoiOptionsFunc parameter allow callers to override the
// default (exact) comparison behavior without changing their signatures:
//
//	v.Eq(other, options.WithEpsilon(1e-9))
package options

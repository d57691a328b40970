// Package numeric provides the epsilon-aware floating-point comparisons the rest of
// the module builds on: a breakpoint, circumcenter, or box-wall crossing is rarely an
// exact float match, so the box's boundary checks (box.Box.Contains, segment/box
// intersection) and vector2.Vector2.Eq go through these helpers instead of raw
// `==`/`<`/`>`. The beachline's breakpoint location in fortune does not use them.
//
// FloatEquals, FloatGreaterThanOrEqualTo, and FloatLessThanOrEqualTo share one
// epsilon parameter per call so callers can use spec-recommended tolerances
// ([options.DefaultEpsilon]) or their own. SnapToEpsilon rounds a value to the
// nearest whole number when it's within epsilon of one, smoothing the small
// floating-point drift that accumulates in vertices computed from several chained
// arithmetic operations (see box.Box.Grow).
package numeric

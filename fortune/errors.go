package fortune

import "errors"

// ErrDuplicateSite is returned by Construct when two input sites coincide exactly
// (spec.md §6: "no duplicates (within ε)"; spec.md §7 leaves this undefined in general,
// but the exact-coincidence case is cheap to catch at the input boundary).
var ErrDuplicateSite = errors.New("fortune: duplicate site")

// ErrNotBounded is returned by (*Diagram).Intersect when called before Bound: clipping
// assumes every half-edge already has both endpoints set, which only Bound guarantees.
var ErrNotBounded = errors.New("fortune: diagram has not been bounded")

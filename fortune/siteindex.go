package fortune

import (
	"fmt"

	"github.com/google/btree"
	"github.com/mikenye/voronoi/vector2"
)

// newSiteIndex builds an empty ordered index of sites, keyed (y, x) ascending, used for
// input validation (the event queue itself orders by y alone and does not break ties by
// x). It only catches *exact* coincidences: unlike
// the sweep's own epsilon comparisons, a BTree's ordering must be a strict total order to
// keep its invariants, so near-duplicate (within ε but not identical) sites are
// intentionally out of scope for this check.
func newSiteIndex() *btree.BTreeG[vector2.Vector2] {
	return btree.NewG(32, func(a, b vector2.Vector2) bool {
		if a.Y() != b.Y() {
			return a.Y() < b.Y()
		}
		return a.X() < b.X()
	})
}

// checkDuplicateSites returns ErrDuplicateSite on the first exact coordinate collision
// in points.
func checkDuplicateSites(points []vector2.Vector2) error {
	idx := newSiteIndex()
	for _, p := range points {
		if _, found := idx.ReplaceOrInsert(p); found {
			return fmt.Errorf("%w: %s", ErrDuplicateSite, p)
		}
	}
	return nil
}

package fortune

import (
	"testing"

	"github.com/mikenye/voronoi/vector2"
	"github.com/stretchr/testify/assert"
)

func TestCheckDuplicateSites_NoDuplicates(t *testing.T) {
	points := []vector2.Vector2{
		vector2.New(0, 0),
		vector2.New(1, 0),
		vector2.New(0, 1),
	}
	assert.NoError(t, checkDuplicateSites(points))
}

func TestCheckDuplicateSites_ExactDuplicate(t *testing.T) {
	points := []vector2.Vector2{
		vector2.New(0, 0),
		vector2.New(1, 1),
		vector2.New(0, 0),
	}
	err := checkDuplicateSites(points)
	assert.ErrorIs(t, err, ErrDuplicateSite)
}

func TestCheckDuplicateSites_Empty(t *testing.T) {
	assert.NoError(t, checkDuplicateSites(nil))
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBoardRingCaptureRecapturesWholeGroup plays Black around every
// border/corner point of a 3x3 board, leaving only the center empty,
// then lets White play the center. Since the Black ring's only liberty
// was the center, White's move captures the entire eight-stone ring
// rather than committing suicide, ending as a lone White stone with all
// four liberties restored.
func TestBoardRingCaptureRecapturesWholeGroup(t *testing.T) {
	b := NewSquareBoard(3)
	center := Point{1, 1}
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			p := Point{x, y}
			if p == center {
				continue
			}
			require.NoError(t, b.Place(p, PlayerBlack))
		}
	}

	require.NoError(t, b.Place(center, PlayerWhite))

	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			p := Point{x, y}
			if p == center {
				continue
			}
			assert.Equal(t, Empty, b.GetPointState(p), "ring point %v should have been captured", p)
		}
	}
	g := b.Group(b.GetPointGroup(center))
	require.NotNil(t, g)
	assert.Equal(t, 1, g.StoneCount())
	assert.Equal(t, 4, g.Liberty())
}

// fiveByFiveScenario builds the shared 5x5 position exercised by the
// group-stone-count and legal-move-count scenarios:
//
//	.  B  W  W  .
//	.  B  W  .  W
//	B  B  B  W  W
//	.  B  .  B  B
//	.  .  B  W  .
func fiveByFiveScenario(t *testing.T) *Board {
	t.Helper()
	b := NewSquareBoard(5)
	moves := []struct {
		p Point
		c Player
	}{
		{Point{0, 1}, PlayerBlack},
		{Point{0, 2}, PlayerWhite},
		{Point{0, 3}, PlayerWhite},
		{Point{1, 1}, PlayerBlack},
		{Point{1, 2}, PlayerWhite},
		{Point{1, 4}, PlayerWhite},
		{Point{2, 0}, PlayerBlack},
		{Point{2, 1}, PlayerBlack},
		{Point{2, 2}, PlayerBlack},
		{Point{2, 3}, PlayerWhite},
		{Point{2, 4}, PlayerWhite},
		{Point{3, 1}, PlayerBlack},
		{Point{3, 3}, PlayerBlack},
		{Point{3, 4}, PlayerBlack},
		{Point{4, 2}, PlayerBlack},
		{Point{4, 3}, PlayerWhite},
	}
	for _, m := range moves {
		require.NoError(t, b.Place(m.p, m.c))
	}
	return b
}

// TestBoardGroupStoneCounts checks group sizes
// over the shared 5x5 scenario.
func TestBoardGroupStoneCounts(t *testing.T) {
	b := fiveByFiveScenario(t)

	assert.Equal(t, 2, b.Group(b.GetPointGroup(Point{3, 4})).StoneCount())
	assert.Equal(t, 6, b.Group(b.GetPointGroup(Point{2, 1})).StoneCount())
	assert.Equal(t, 3, b.Group(b.GetPointGroup(Point{2, 4})).StoneCount())
}

// TestBoardLegalMoveCounts asserts that, over the shared 5x5 scenario,
// each color has exactly seven legal moves among the board's nine
// empty points — each color is barred from two of the nine by suicide,
// and the two barred pairs are different points.
func TestBoardLegalMoveCounts(t *testing.T) {
	b := fiveByFiveScenario(t)

	assert.Len(t, b.GetAllValidPosition(PlayerBlack), 7)
	assert.Len(t, b.GetAllValidPosition(PlayerWhite), 7)
}

// TestBoardEyeClassification exercises
// a dedicated 5x5 shape built specifically to exercise isTrueEye,
// isEye, isSemiEye, and isFakeEye together.
func TestBoardEyeClassification(t *testing.T) {
	b := NewSquareBoard(5)
	moves := []struct {
		p Point
		c Player
	}{
		{Point{0, 1}, PlayerWhite},
		{Point{1, 0}, PlayerWhite},
		{Point{1, 1}, PlayerWhite},
		{Point{1, 2}, PlayerWhite},
		{Point{1, 3}, PlayerWhite},
		{Point{1, 4}, PlayerWhite},
		{Point{0, 4}, PlayerWhite},
		{Point{2, 0}, PlayerWhite},
		{Point{2, 2}, PlayerBlack},
		{Point{3, 0}, PlayerBlack},
		{Point{3, 1}, PlayerBlack},
		{Point{3, 2}, PlayerBlack},
		{Point{3, 3}, PlayerBlack},
	}
	for _, m := range moves {
		require.NoError(t, b.Place(m.p, m.c))
	}

	assert.True(t, b.IsTrueEye(Point{0, 0}, PlayerWhite))
	assert.False(t, b.IsTrueEye(Point{0, 0}, PlayerBlack))
	assert.False(t, b.IsEye(Point{0, 2}, PlayerWhite))
	assert.False(t, b.IsSemiEye(Point{0, 3}, PlayerWhite))
	assert.True(t, b.IsFakeEye(Point{2, 1}, PlayerBlack))
	assert.True(t, b.IsFakeEye(Point{2, 1}, PlayerWhite))
}

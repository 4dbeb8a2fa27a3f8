package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupNodeAccessors(t *testing.T) {
	n := &GroupNode{player: PlayerBlack, stoneCount: 3, liberty: 2}
	assert.Equal(t, PlayerBlack, n.Player())
	assert.Equal(t, 3, n.StoneCount())
	assert.Equal(t, 2, n.Liberty())
}

func TestGroupListInsertGetErase(t *testing.T) {
	l := NewGroupList()
	assert.Equal(t, NoGroup, l.End())
	assert.Nil(t, l.Get(NoGroup))

	h1 := l.Insert(&GroupNode{player: PlayerBlack, stoneCount: 1, liberty: 4})
	h2 := l.Insert(&GroupNode{player: PlayerWhite, stoneCount: 2, liberty: 3})
	assert.NotEqual(t, h1, h2)

	assert.Equal(t, PlayerBlack, l.Get(h1).Player())
	assert.Equal(t, PlayerWhite, l.Get(h2).Player())

	l.Erase(h1)
	assert.Nil(t, l.Get(h1))
	assert.Equal(t, PlayerWhite, l.Get(h2).Player())
}

// TestGroupListReclaimsSlots asserts that erasing and re-inserting
// reuses a slot without disturbing other live handles.
func TestGroupListReclaimsSlots(t *testing.T) {
	l := NewGroupList()
	h1 := l.Insert(&GroupNode{player: PlayerBlack, stoneCount: 1, liberty: 1})
	h2 := l.Insert(&GroupNode{player: PlayerWhite, stoneCount: 1, liberty: 1})
	l.Erase(h1)

	h3 := l.Insert(&GroupNode{player: PlayerBlack, stoneCount: 5, liberty: 5})
	assert.Equal(t, h1, h3, "freed slot should be reused")
	assert.Equal(t, PlayerWhite, l.Get(h2).Player(), "unrelated handle unaffected by reclaim")
}

func TestGroupListEraseOfNoGroupIsNoOp(t *testing.T) {
	l := NewGroupList()
	h := l.Insert(&GroupNode{player: PlayerBlack, stoneCount: 1, liberty: 1})
	l.Erase(NoGroup)
	assert.Equal(t, PlayerBlack, l.Get(h).Player())
}

func TestGroupListCloneIndependence(t *testing.T) {
	l := NewGroupList()
	h := l.Insert(&GroupNode{player: PlayerBlack, stoneCount: 1, liberty: 4})

	clone := l.Clone()
	clone.Get(h).stoneCount = 99
	assert.Equal(t, 1, l.Get(h).StoneCount())
	assert.Equal(t, 99, clone.Get(h).StoneCount())

	h2 := clone.Insert(&GroupNode{player: PlayerWhite, stoneCount: 1, liberty: 1})
	assert.Nil(t, l.Get(h2))
}

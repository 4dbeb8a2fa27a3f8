package game

import (
	"math/rand"
	"time"
)

// PointState is the occupancy of a single intersection.
type PointState uint8

const (
	Empty PointState = iota
	Black
	White
)

// Player is one of the two sides. Opposing player is total.
type Player uint8

const (
	PlayerBlack Player = iota
	PlayerWhite
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}

// State returns the PointState a stone of this player occupies a point
// with.
func (p Player) State() PointState {
	if p == PlayerBlack {
		return Black
	}
	return White
}

func (p Player) String() string {
	if p == PlayerBlack {
		return "Black"
	}
	return "White"
}

// BoardGrid is a dense W*H map from Point to PointState, hashable via an
// incrementally-maintained Zobrist hash so positional comparisons (and,
// for a future superko extension, position sets) stay cheap.
type BoardGrid struct {
	dims   Dims
	cells  []PointState
	hash   uint64
	zobrist [][3]uint64 // per-point, per-PointState random keys; index 0 (Empty) is always 0
}

// zobristSeed is drawn once per process and seeds every grid's key table.
var zobristSeed = time.Now().UnixNano()

// NewBoardGrid returns an all-Empty grid of the given dimensions.
func NewBoardGrid(d Dims) *BoardGrid {
	g := &BoardGrid{
		dims:    d,
		cells:   make([]PointState, d.W*d.H),
		zobrist: make([][3]uint64, d.W*d.H),
	}
	// Seeded once per process (zobristSeed): every grid of the same size
	// in this process draws the same keys, so equal positions hash equal,
	// while distinct processes don't share a table.
	rnd := rand.New(rand.NewSource(zobristSeed))
	for i := range g.zobrist {
		g.zobrist[i][Black] = rnd.Uint64()
		g.zobrist[i][White] = rnd.Uint64()
	}
	return g
}

// Get returns the state of the cell at p. p must be in bounds.
func (g *BoardGrid) Get(p Point) PointState {
	return g.cells[p.index(g.dims)]
}

// Set overwrites the cell at p, maintaining the incremental hash.
func (g *BoardGrid) Set(p Point, s PointState) {
	idx := p.index(g.dims)
	old := g.cells[idx]
	if old == s {
		return
	}
	if old != Empty {
		g.hash ^= g.zobrist[idx][old]
	}
	if s != Empty {
		g.hash ^= g.zobrist[idx][s]
	}
	g.cells[idx] = s
}

// Hash returns the grid's current Zobrist hash. Any single-cell change
// produces a different hash with overwhelming probability.
func (g *BoardGrid) Hash() uint64 {
	return g.hash
}

// Clone returns a deep, independent copy of g.
func (g *BoardGrid) Clone() *BoardGrid {
	clone := &BoardGrid{
		dims:    g.dims,
		cells:   append([]PointState(nil), g.cells...),
		hash:    g.hash,
		zobrist: g.zobrist, // immutable after construction; safe to share
	}
	return clone
}

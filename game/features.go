package game

// RequestV1 is the core's raw per-point feature export. Formatting it
// into any downstream wire schema ("training request v1" or otherwise)
// is a collaborator's job — the core only pins OurGroupLib1's size and
// meaning; every other field here is this module's own, exercised by
// consumers outside the core.
type RequestV1 struct {
	// OurGroupLib1 has length Dims.W*Dims.H, row-major. Entry i is 1 iff
	// the point at that index holds a stone of the requested player whose
	// group has exactly one liberty (atari), else 0.
	OurGroupLib1 []uint8

	// OppGroupLib1 mirrors OurGroupLib1 for the requested player's
	// opponent, useful to a policy net as a "threats against me" channel.
	OppGroupLib1 []uint8

	// StoneCount is the requested player's total stones on the board.
	StoneCount int
}

// GenerateRequestV1 extracts RequestV1 for player.
func (b *Board) GenerateRequestV1(player Player) RequestV1 {
	size := b.dims.W * b.dims.H
	req := RequestV1{
		OurGroupLib1: make([]uint8, size),
		OppGroupLib1: make([]uint8, size),
	}
	opp := player.Opponent()
	for x := 0; x < b.dims.W; x++ {
		for y := 0; y < b.dims.H; y++ {
			p := Point{x, y}
			idx := p.index(b.dims)
			h := b.pos.Get(p)
			g := b.groups.Get(h)
			if g == nil {
				continue
			}
			switch g.player {
			case player:
				req.StoneCount++
				if g.liberty == 1 {
					req.OurGroupLib1[idx] = 1
				}
			case opp:
				if g.liberty == 1 {
					req.OppGroupLib1[idx] = 1
				}
			}
		}
	}
	return req
}

package game

// PosGroup is a dense W*H map from Point to Handle. Empty points map to
// NoGroup.
type PosGroup struct {
	dims  Dims
	cells []Handle
}

// NewPosGroup returns a PosGroup of the given dimensions with every point
// mapped to NoGroup.
func NewPosGroup(d Dims) *PosGroup {
	cells := make([]Handle, d.W*d.H)
	for i := range cells {
		cells[i] = NoGroup
	}
	return &PosGroup{dims: d, cells: cells}
}

// Get returns the handle at p.
func (g *PosGroup) Get(p Point) Handle {
	return g.cells[p.index(g.dims)]
}

// Set assigns the handle at p.
func (g *PosGroup) Set(p Point, h Handle) {
	g.cells[p.index(g.dims)] = h
}

// Merge rewrites every point whose handle equals Get(b) to Get(a). If
// Get(a) == Get(b) (including a == b), it is a no-op. Merge does not
// delete the merged-away GroupNode from any GroupList — that is the
// Board's responsibility.
func (g *PosGroup) Merge(a, b Point) {
	ha := g.Get(a)
	hb := g.Get(b)
	if ha == hb {
		return
	}
	for i, h := range g.cells {
		if h == hb {
			g.cells[i] = ha
		}
	}
}

// Clone returns a deep, independent copy of g.
func (g *PosGroup) Clone() *PosGroup {
	return &PosGroup{dims: g.dims, cells: append([]Handle(nil), g.cells...)}
}

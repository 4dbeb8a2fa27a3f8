package game

// Point is a coordinate on a board of Dims W x H. X is the row, Y is the
// column — see Board's doc comment for why the axes are named this way.
type Point struct {
	X, Y int
}

// Dims is a board's runtime width and height. Go lacks cheap
// value-level generics for fixing grid size at compile time, so
// dimensions are carried at runtime and grids are flat slices of
// length W*H.
type Dims struct {
	W, H int
}

// InBounds reports whether p lies within a Dims-sized board.
func (p Point) InBounds(d Dims) bool {
	return p.X >= 0 && p.X < d.W && p.Y >= 0 && p.Y < d.H
}

// IsTop reports whether p has no "up" neighbor.
func (p Point) IsTop() bool { return p.X == 0 }

// IsBottom reports whether p has no "down" neighbor.
func (p Point) IsBottom(d Dims) bool { return p.X == d.W-1 }

// IsLeft reports whether p has no "left" neighbor.
func (p Point) IsLeft() bool { return p.Y == 0 }

// IsRight reports whether p has no "right" neighbor.
func (p Point) IsRight(d Dims) bool { return p.Y == d.H-1 }

// Down returns the point reached by incrementing X, wrapping to the next
// column (Y+1, X reset to 0) on overflow past W-1, and wrapping the whole
// board back to (0, 0) past (W-1, H-1).
func (p Point) Down(d Dims) Point {
	if p.X < d.W-1 {
		return Point{p.X + 1, p.Y}
	}
	if p.Y < d.H-1 {
		return Point{0, p.Y + 1}
	}
	return Point{0, 0}
}

// Up returns the logical predecessor of p: Y decremented, borrowing from
// X (wrapping Y to H-1) on underflow, and wrapping the whole board back
// to (W-1, H-1) before (0, 0). This deliberately does not mirror Down's
// X-major stepping: the asymmetry produces a cross-row jump on
// underflow (e.g. (3, 0) steps to (2, H-1), not (2, 0)).
func (p Point) Up(d Dims) Point {
	if p.Y > 0 {
		return Point{p.X, p.Y - 1}
	}
	if p.X > 0 {
		return Point{p.X - 1, d.H - 1}
	}
	return Point{d.W - 1, d.H - 1}
}

// index returns p's offset into a flat W*H slice for dimensions d. Callers
// must ensure p.InBounds(d).
func (p Point) index(d Dims) int {
	return p.X*d.H + p.Y
}

// OrthogonalNeighbors returns the up-to-four orthogonally adjacent points
// of p that lie within d, in up/down/left/right order.
func (p Point) OrthogonalNeighbors(d Dims) []Point {
	neighbors := make([]Point, 0, 4)
	if !p.IsTop() {
		neighbors = append(neighbors, Point{p.X - 1, p.Y})
	}
	if !p.IsBottom(d) {
		neighbors = append(neighbors, Point{p.X + 1, p.Y})
	}
	if !p.IsLeft() {
		neighbors = append(neighbors, Point{p.X, p.Y - 1})
	}
	if !p.IsRight(d) {
		neighbors = append(neighbors, Point{p.X, p.Y + 1})
	}
	return neighbors
}

// DiagonalNeighbors returns the up-to-four diagonally adjacent points of p
// that lie within d.
func (p Point) DiagonalNeighbors(d Dims) []Point {
	neighbors := make([]Point, 0, 4)
	candidates := [4]Point{
		{p.X - 1, p.Y - 1},
		{p.X - 1, p.Y + 1},
		{p.X + 1, p.Y - 1},
		{p.X + 1, p.Y + 1},
	}
	for _, c := range candidates {
		if c.InBounds(d) {
			neighbors = append(neighbors, c)
		}
	}
	return neighbors
}

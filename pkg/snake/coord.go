package snake

// Coord is a cell on the grid.
type Coord struct {
	X, Y int
}

// Step moves c one cell along d on an n*n torus. Leaving one edge re-enters
// on the opposite edge of the same row or column.
func (c Coord) Step(d Direction, n int) Coord {
	dx, dy := d.Delta()
	return Coord{X: wrap(c.X+dx, n), Y: wrap(c.Y+dy, n)}
}

// In reports whether c lies on an n*n grid.
func (c Coord) In(n int) bool {
	return c.X >= 0 && c.X < n && c.Y >= 0 && c.Y < n
}

func wrap(v, n int) int {
	return (v%n + n) % n
}

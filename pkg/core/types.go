package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Area returns the number of cells covered by the grid.
func (s Size) Area() int { return s.W * s.H }

package snake

import (
	"errors"
	"fmt"
)

// ErrBoardFull means the snake covers every cell so no food can be placed.
// It cannot happen in play that starts from a valid Config unless the snake
// fills the board, and the engine treats it as an invariant violation.
var ErrBoardFull = errors.New("board full")

// foodAttemptsPerCell bounds rejection sampling before falling back to a scan.
const foodAttemptsPerCell = 4

// placeFood picks a uniformly random free cell.
func (e *Engine) placeFood() (Coord, error) {
	area := e.Size().Area()
	occupied := make(map[Coord]struct{}, len(e.snake))
	for _, seg := range e.snake {
		occupied[seg] = struct{}{}
	}
	if len(occupied) >= area {
		return Coord{}, fmt.Errorf("place food on %dx%d board: %w", e.n, e.n, ErrBoardFull)
	}

	for attempt := 0; attempt < foodAttemptsPerCell*area; attempt++ {
		c := Coord{X: e.rng.IntN(e.n), Y: e.rng.IntN(e.n)}
		if _, hit := occupied[c]; !hit {
			return c, nil
		}
	}

	free := make([]Coord, 0, area-len(occupied))
	for y := 0; y < e.n; y++ {
		for x := 0; x < e.n; x++ {
			c := Coord{X: x, Y: y}
			if _, hit := occupied[c]; !hit {
				free = append(free, c)
			}
		}
	}
	return free[e.rng.IntN(len(free))], nil
}

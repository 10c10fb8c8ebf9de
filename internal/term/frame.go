package term

import (
	"fmt"
	"strings"

	"grid-snake/internal/core"
	"grid-snake/internal/render"
	"grid-snake/pkg/snake"
)

var glyphs = map[uint8]string{
	render.CellEmpty: " .",
	render.CellBody:  " o",
	render.CellHead:  " @",
	render.CellFood:  " *",
}

// Frame renders a snapshot as text. Lines end in \r\n because the terminal
// is in raw mode.
func Frame(st snake.State, paused bool) string {
	grid := core.NewByteGrid(st.Size, st.Size)
	render.Rasterize(grid, st)

	var b strings.Builder
	border := "+" + strings.Repeat("-", 2*st.Size+1) + "+\r\n"
	b.WriteString(border)
	for y := 0; y < st.Size; y++ {
		b.WriteString("|")
		for x := 0; x < st.Size; x++ {
			b.WriteString(glyphs[grid.At(x, y)])
		}
		b.WriteString(" |\r\n")
	}
	b.WriteString(border)

	fmt.Fprintf(&b, "length %d  tick %d  heading %s\r\n", st.Len(), st.Tick, st.Heading)
	switch {
	case !st.Alive:
		b.WriteString("GAME OVER  r: new game  q: quit\r\n")
	case paused:
		b.WriteString("PAUSED  p: resume  q: quit\r\n")
	default:
		b.WriteString("arrows/wasd: steer  p: pause  q: quit\r\n")
	}
	return b.String()
}

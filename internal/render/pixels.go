package render

import (
	"image/color"

	"grid-snake/internal/core"
	"grid-snake/pkg/snake"
)

// Cell values written by Rasterize.
const (
	CellEmpty uint8 = iota
	CellBody
	CellHead
	CellFood
)

// Palette maps cell values to colours. The board is dark grey, the snake
// green and the food red.
var Palette = []color.RGBA{
	CellEmpty: {R: 0x33, G: 0x33, B: 0x33, A: 0xff},
	CellBody:  {R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	CellHead:  {R: 0x30, G: 0xc0, B: 0x30, A: 0xff},
	CellFood:  {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
}

// Rasterize writes the snapshot into g, which must match the board size.
func Rasterize(g *core.ByteGrid, st snake.State) {
	g.Clear()
	g.Set(st.Food.X, st.Food.Y, CellFood)
	for i := len(st.Snake) - 1; i >= 0; i-- {
		seg := st.Snake[i]
		v := CellBody
		if i == 0 {
			v = CellHead
		}
		g.Set(seg.X, seg.Y, v)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

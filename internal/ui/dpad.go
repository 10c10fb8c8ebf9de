package ui

import (
	"image"

	"grid-snake/pkg/snake"
)

const (
	dpadButton = 44
	dpadGap    = 6
)

// DPadButton is one on-screen direction button.
type DPadButton struct {
	Dir   snake.Direction
	Label string
	Rect  image.Rectangle
}

// DPad lays out four direction buttons in a plus shape: UP above, LEFT and
// RIGHT side by side, DOWN below.
type DPad struct {
	Buttons [4]DPadButton
	bounds  image.Rectangle
}

// DPadSize returns the width and height a DPad occupies.
func DPadSize() (int, int) {
	return 3*dpadButton + 2*dpadGap, 3*dpadButton + 2*dpadGap
}

// NewDPad places a DPad with its top-left corner at (x, y).
func NewDPad(x, y int) *DPad {
	step := dpadButton + dpadGap
	cell := func(col, row int) image.Rectangle {
		origin := image.Pt(x+col*step, y+row*step)
		return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(dpadButton, dpadButton))}
	}
	w, h := DPadSize()
	return &DPad{
		Buttons: [4]DPadButton{
			{Dir: snake.Up, Label: "UP", Rect: cell(1, 0)},
			{Dir: snake.Left, Label: "LEFT", Rect: cell(0, 1)},
			{Dir: snake.Right, Label: "RIGHT", Rect: cell(2, 1)},
			{Dir: snake.Down, Label: "DOWN", Rect: cell(1, 2)},
		},
		bounds: image.Rect(x, y, x+w, y+h),
	}
}

// Bounds returns the area covered by the pad.
func (d *DPad) Bounds() image.Rectangle { return d.bounds }

// Hit returns the direction of the button under (x, y), if any.
func (d *DPad) Hit(x, y int) (snake.Direction, bool) {
	if d == nil {
		return snake.None, false
	}
	for _, b := range d.Buttons {
		if pointInRect(x, y, b.Rect) {
			return b.Dir, true
		}
	}
	return snake.None, false
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

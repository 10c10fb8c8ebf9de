//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"grid-snake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status bar, the game-over banner and the direction pad.
type HUD struct {
	width    int
	snapshot core.ParameterSnapshot
	pad      *DPad
	pressed  [4]bool
}

// NewHUD constructs a HUD for a window of the given width.
func NewHUD(width int, pad *DPad) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width, pad: pad}
}

// Update caches the snapshot to draw and which pad buttons are held down.
func (h *HUD) Update(snapshot core.ParameterSnapshot, held []image.Point) {
	if h == nil {
		return
	}
	h.snapshot = snapshot
	h.pressed = [4]bool{}
	if h.pad == nil {
		return
	}
	for _, p := range held {
		for i, b := range h.pad.Buttons {
			if pointInRect(p.X, p.Y, b.Rect) {
				h.pressed[i] = true
			}
		}
	}
}

// Draw paints the status bar at statusTop and the pad. When the snapshot
// reports a finished game, board is covered with a game-over banner.
func (h *HUD) Draw(screen *ebiten.Image, board image.Rectangle, statusTop int) {
	if h == nil || h.width <= 0 {
		return
	}
	face := basicfont.Face7x13

	vector.DrawFilledRect(screen, 0, float32(statusTop), float32(h.width), statusHeight, color.RGBA{R: 16, G: 16, B: 20, A: 255}, false)
	x := panelPadding
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			line := p.Value
			if p.Label != "" {
				line = p.Label + " " + p.Value
			}
			text.Draw(screen, line, face, x, statusTop+statusBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			x += text.BoundString(face, line).Dx() + panelPadding
		}
	}

	if state, _ := h.snapshot.Lookup("state"); state == StateOver {
		vector.DrawFilledRect(screen, float32(board.Min.X), float32(board.Min.Y), float32(board.Dx()), float32(board.Dy()), color.Black, false)
		drawCentered(screen, "Game Over", board, color.White)
		sub := board
		sub.Min.Y += 2 * lineHeight
		sub.Max.Y += 2 * lineHeight
		drawCentered(screen, "press R", sub, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}

	if h.pad == nil {
		return
	}
	for i, b := range h.pad.Buttons {
		bg := color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
		if h.pressed[i] {
			bg = color.RGBA{R: 0x77, G: 0x77, B: 0x77, A: 255}
		}
		r := b.Rect
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
		drawCentered(screen, b.Label, r, color.Black)
	}
}

func drawCentered(dst *ebiten.Image, label string, rect image.Rectangle, fg color.Color) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, fg)
}

const (
	panelPadding   = 12
	lineHeight     = 13
	statusBaseline = 20
)

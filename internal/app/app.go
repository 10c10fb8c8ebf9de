//go:build ebiten

package app

import (
	"image"
	"log"
	"time"

	"grid-snake/internal/core"
	"grid-snake/internal/render"
	"grid-snake/internal/ui"
	"grid-snake/pkg/snake"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	margin = 16
	// minWidth leaves room for the status line under small boards.
	minWidth = 360
)

// Game adapts a snake engine to the ebiten.Game interface. It is the driver:
// it ticks the engine on a fixed cadence and forwards keyboard, mouse and
// touch input.
type Game struct {
	cfg    snake.Config
	engine *snake.Engine
	state  snake.State

	grid    *core.ByteGrid
	painter *render.GridPainter
	hud     *ui.HUD
	pad     *ui.DPad
	step    *core.FixedStep

	scale  int
	paused bool

	board     image.Rectangle
	statusTop int
	width     int
	height    int
}

// New constructs a Game that ticks every interval.
func New(cfg snake.Config, scale int, interval time.Duration) (*Game, error) {
	engine, err := snake.New(cfg)
	if err != nil {
		return nil, err
	}
	if scale <= 0 {
		scale = 1
	}

	size := engine.Size()
	boardW, boardH := size.W*scale, size.H*scale
	padW, padH := ui.DPadSize()
	width := max(boardW, padW+2*margin, minWidth)
	boardX := (width - boardW) / 2
	statusTop := boardH
	padY := statusTop + ui.StatusHeight + margin
	pad := ui.NewDPad((width-padW)/2, padY)

	g := &Game{
		cfg:       cfg,
		grid:      core.NewByteGrid(size.W, size.H),
		painter:   render.NewGridPainter(size.W, size.H, render.Palette),
		hud:       ui.NewHUD(width, pad),
		pad:       pad,
		step:      core.NewFixedStep(interval),
		scale:     scale,
		board:     image.Rect(boardX, 0, boardX+boardW, boardH),
		statusTop: statusTop,
		width:     width,
		height:    padY + padH + margin,
	}
	g.start(engine)
	return g, nil
}

// Size returns the window size in pixels.
func (g *Game) Size() (int, int) { return g.width, g.height }

func (g *Game) start(engine *snake.Engine) {
	g.engine = engine
	g.state = engine.State()
	g.step.Reset()
	size := engine.Size()
	log.Printf("game %s started: %dx%d board, seed %d", engine.ID(), size.W, size.H, engine.Seed())
}

// Restart replaces the finished (or running) game with a new engine.
func (g *Game) Restart(seed int64) error {
	cfg := g.cfg
	cfg.Seed = seed
	engine, err := snake.New(cfg)
	if err != nil {
		return err
	}
	g.paused = false
	g.start(engine)
	return nil
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.step.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Restart(g.cfg.Seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.Restart(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	for _, d := range g.directions() {
		g.engine.SetDirection(d)
	}

	if !g.paused && g.step.ShouldStep() {
		wasAlive := g.state.Alive
		g.engine.Tick()
		g.state = g.engine.State()
		if wasAlive && !g.state.Alive {
			log.Printf("game %s over: length %d after %d ticks", g.state.ID, g.state.Len(), g.state.Tick)
		}
	}

	g.hud.Update(Parameters(g.state, g.paused), g.heldPoints())
	return nil
}

// directions collects the direction requests made this frame, in order.
func (g *Game) directions() []snake.Direction {
	var dirs []snake.Direction
	if d := keyDirection(); d != snake.None {
		dirs = append(dirs, d)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if d, ok := g.pad.Hit(ebiten.CursorPosition()); ok {
			dirs = append(dirs, d)
		}
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if d, ok := g.pad.Hit(ebiten.TouchPosition(id)); ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func (g *Game) heldPoints() []image.Point {
	var pts []image.Point
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		pts = append(pts, image.Pt(ebiten.CursorPosition()))
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		pts = append(pts, image.Pt(ebiten.TouchPosition(id)))
	}
	return pts
}

func keyDirection() snake.Direction {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyUp):
		return snake.Up
	case inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyDown):
		return snake.Down
	case inpututil.IsKeyJustPressed(ebiten.KeyA) || inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		return snake.Left
	case inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyRight):
		return snake.Right
	}
	return snake.None
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	render.Rasterize(g.grid, g.state)
	g.painter.Blit(screen, g.grid.Cells(), g.scale, g.board.Min.X, g.board.Min.Y)
	g.hud.Draw(screen, g.board, g.statusTop)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

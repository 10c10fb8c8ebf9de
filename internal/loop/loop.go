// Package loop drives an engine on a wall-clock cadence outside of a GUI
// frame loop.
package loop

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"grid-snake/pkg/snake"

	"golang.org/x/sync/errgroup"
)

// ErrRestart is returned by Run when the player asked for a new game.
var ErrRestart = errors.New("restart requested")

var errQuit = errors.New("quit")

// Action is a non-directional command.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionRestart
)

// Command is one unit of player input.
type Command struct {
	Dir    snake.Direction
	Action Action
}

// Options configures Run.
type Options struct {
	// Interval is the time between ticks.
	Interval time.Duration
	// Commands delivers player input. Closing it ends the run like ActionQuit.
	Commands <-chan Command
	// Draw is called from a single goroutine with the initial state, after
	// every tick and whenever pause is toggled.
	Draw func(st snake.State, paused bool)
}

// Run ticks e every opts.Interval until the player quits (nil error), asks
// for a restart (ErrRestart) or ctx is cancelled (ctx.Err()).
func Run(ctx context.Context, e *snake.Engine, opts Options) error {
	if opts.Interval <= 0 {
		opts.Interval = 200 * time.Millisecond
	}
	draw := opts.Draw
	if draw == nil {
		draw = func(snake.State, bool) {}
	}

	states, unsubscribe := e.Subscribe(1)
	defer unsubscribe()

	var paused atomic.Bool
	redraw := make(chan struct{}, 1)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ticker := time.NewTicker(opts.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-ticker.C:
				if !paused.Load() {
					e.Tick()
				}
			}
		}
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case cmd, ok := <-opts.Commands:
				if !ok {
					return errQuit
				}
				switch cmd.Action {
				case ActionQuit:
					return errQuit
				case ActionRestart:
					return ErrRestart
				case ActionPause:
					if !e.Over() {
						paused.Store(!paused.Load())
						select {
						case redraw <- struct{}{}:
						default:
						}
					}
				}
				if cmd.Dir != snake.None && !paused.Load() {
					e.SetDirection(cmd.Dir)
				}
			}
		}
	})

	g.Go(func() error {
		last := e.State()
		draw(last, paused.Load())
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case st, ok := <-states:
				if !ok {
					return nil
				}
				last = st
				draw(last, paused.Load())
			case <-redraw:
				draw(last, paused.Load())
			}
		}
	})

	err := g.Wait()
	switch {
	case errors.Is(err, errQuit):
		return nil
	case ctx.Err() != nil:
		return ctx.Err()
	}
	return err
}

// Package snake implements the game-state machine for single-player snake on
// a toroidal grid.
package snake

import (
	"sync"

	"grid-snake/pkg/core"

	"github.com/google/uuid"
)

// State is a snapshot of a game. Snapshots are never modified by the engine;
// callers must not modify Snake either, since subscribers share one copy.
type State struct {
	ID      uuid.UUID
	Tick    uint64
	Size    int
	Snake   []Coord
	Food    Coord
	Heading Direction
	Alive   bool
}

// Head returns the first segment.
func (s State) Head() Coord { return s.Snake[0] }

// Len returns the number of segments.
func (s State) Len() int { return len(s.Snake) }

// Occupied reports whether c is covered by the snake.
func (s State) Occupied(c Coord) bool {
	for _, seg := range s.Snake {
		if seg == c {
			return true
		}
	}
	return false
}

// Engine owns one game. It is safe for concurrent use; Tick and SetDirection
// are serialised so a snapshot never shows a partially applied tick.
type Engine struct {
	mu sync.Mutex

	id   uuid.UUID
	n    int
	rng  *core.RNG
	tick uint64

	snake []Coord
	food  Coord
	// heading is the direction applied by the last completed tick; pending
	// is what the next tick will apply.
	heading Direction
	pending Direction
	alive   bool

	subs    map[int]chan State
	nextSub int
}

// New starts a game from cfg.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		id:      uuid.New(),
		n:       cfg.Size,
		rng:     core.NewRNG(cfg.Seed),
		snake:   append([]Coord(nil), cfg.start()...),
		heading: cfg.Heading,
		pending: cfg.Heading,
		alive:   true,
		subs:    make(map[int]chan State),
	}
	if cfg.Food != nil {
		e.food = *cfg.Food
	} else {
		food, err := e.placeFood()
		if err != nil {
			return nil, err
		}
		e.food = food
	}
	return e, nil
}

// ID identifies this game instance.
func (e *Engine) ID() uuid.UUID { return e.id }

// Seed reports the effective food placement seed.
func (e *Engine) Seed() int64 { return e.rng.Seed() }

// Size returns the board dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.n, H: e.n} }

// Over reports whether the snake has collided with itself.
func (e *Engine) Over() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.alive
}

// SetDirection requests a new heading for the next tick. Requests that
// reverse the heading of the last completed tick are dropped, as is anything
// received after the game is over.
func (e *Engine) SetDirection(d Direction) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.alive || !d.Valid() || d == e.heading.Opposite() {
		return
	}
	e.pending = d
}

// Tick advances the game by one step. It does nothing once the game is over.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.alive {
		return
	}

	e.heading = e.pending
	next := e.snake[0].Step(e.heading, e.n)

	// The tail still counts even though it would move away this step.
	for _, seg := range e.snake {
		if seg == next {
			e.alive = false
			e.tick++
			e.publish()
			return
		}
	}

	if next == e.food {
		e.snake = append([]Coord{next}, e.snake...)
		food, err := e.placeFood()
		if err != nil {
			panic(err)
		}
		e.food = food
	} else {
		copy(e.snake[1:], e.snake[:len(e.snake)-1])
		e.snake[0] = next
	}

	e.tick++
	e.publish()
}

// State returns a snapshot as of the last completed tick.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// Subscribe returns a channel that receives a snapshot after every tick that
// changes the game, and a func that cancels the subscription and closes the
// channel. When the channel is full the oldest queued snapshot is discarded,
// so a slow reader always ends up with the latest state.
func (e *Engine) Subscribe(buffer int) (<-chan State, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan State, buffer)

	e.mu.Lock()
	key := e.nextSub
	e.nextSub++
	e.subs[key] = ch
	e.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			e.mu.Lock()
			delete(e.subs, key)
			e.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (e *Engine) snapshot() State {
	return State{
		ID:      e.id,
		Tick:    e.tick,
		Size:    e.n,
		Snake:   append([]Coord(nil), e.snake...),
		Food:    e.food,
		Heading: e.heading,
		Alive:   e.alive,
	}
}

// publish must be called with e.mu held.
func (e *Engine) publish() {
	if len(e.subs) == 0 {
		return
	}
	st := e.snapshot()
	for _, ch := range e.subs {
		select {
		case ch <- st:
			continue
		default:
		}
		// Only publish sends, and it runs under e.mu, so after one receive
		// there is room for st.
		select {
		case <-ch:
		default:
		}
		ch <- st
	}
}

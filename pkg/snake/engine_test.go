package snake

import (
	"errors"
	"math/rand/v2"
	"slices"
	"sync"
	"testing"
)

func mustNew(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestDefaultGameMovesRight(t *testing.T) {
	e := mustNew(t, DefaultConfig())

	st := e.State()
	if !slices.Equal(st.Snake, []Coord{{5, 5}}) {
		t.Fatalf("initial snake %v, want [(5,5)]", st.Snake)
	}
	if st.Food != (Coord{3, 3}) {
		t.Fatalf("initial food %v, want (3,3)", st.Food)
	}

	e.Tick()
	st = e.State()
	if !slices.Equal(st.Snake, []Coord{{6, 5}}) {
		t.Fatalf("snake after tick %v, want [(6,5)]", st.Snake)
	}
	if !st.Alive {
		t.Fatal("snake should be alive")
	}
	if st.Food != (Coord{3, 3}) {
		t.Fatalf("food moved to %v", st.Food)
	}
	if st.Tick != 1 {
		t.Fatalf("tick counter %d, want 1", st.Tick)
	}
}

func TestWrapAcrossRightEdge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Snake = []Coord{{9, 5}}
	e := mustNew(t, cfg)

	e.Tick()
	if head := e.State().Head(); head != (Coord{0, 5}) {
		t.Fatalf("head %v, want (0,5)", head)
	}
}

func TestWrapStaysOnBoard(t *testing.T) {
	for _, n := range []int{2, 3, 10} {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				for _, d := range []Direction{Up, Down, Left, Right} {
					next := Coord{x, y}.Step(d, n)
					if !next.In(n) {
						t.Fatalf("n=%d: (%d,%d) stepping %v left the board at %v", n, x, y, d, next)
					}
				}
			}
		}
	}
	if got := (Coord{0, 0}).Step(Up, 10); got != (Coord{0, 9}) {
		t.Fatalf("up from top row gave %v, want (0,9)", got)
	}
	if got := (Coord{0, 4}).Step(Left, 10); got != (Coord{9, 4}) {
		t.Fatalf("left from first column gave %v, want (9,4)", got)
	}
}

func TestEatingGrows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Snake = []Coord{{5, 5}, {4, 5}}
	cfg.Food = &Coord{6, 5}
	cfg.Seed = 11
	e := mustNew(t, cfg)

	e.Tick()
	st := e.State()
	want := []Coord{{6, 5}, {5, 5}, {4, 5}}
	if !slices.Equal(st.Snake, want) {
		t.Fatalf("snake %v, want %v", st.Snake, want)
	}
	if st.Occupied(st.Food) {
		t.Fatalf("new food %v placed on the snake", st.Food)
	}
	if !st.Food.In(10) {
		t.Fatalf("new food %v off the board", st.Food)
	}
}

func TestCollisionWithVacatingTailFreezes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Snake = []Coord{{5, 5}, {5, 6}, {4, 6}, {4, 5}}
	cfg.Food = &Coord{0, 0}
	cfg.Heading = Left
	e := mustNew(t, cfg)

	before := e.State()
	e.Tick()
	after := e.State()

	if after.Alive {
		t.Fatal("moving onto the tail must end the game")
	}
	if !e.Over() {
		t.Fatal("Over should report true")
	}
	if !slices.Equal(before.Snake, after.Snake) {
		t.Fatalf("snake changed on collision: %v -> %v", before.Snake, after.Snake)
	}
	if before.Food != after.Food {
		t.Fatalf("food changed on collision: %v -> %v", before.Food, after.Food)
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Snake = []Coord{{5, 5}, {5, 6}, {4, 6}, {4, 5}}
	cfg.Food = &Coord{0, 0}
	cfg.Heading = Left
	e := mustNew(t, cfg)
	e.Tick()

	frozen := e.State()
	for i := 0; i < 5; i++ {
		e.SetDirection(Up)
		e.Tick()
	}
	st := e.State()
	if !slices.Equal(frozen.Snake, st.Snake) || frozen.Food != st.Food || frozen.Heading != st.Heading || frozen.Tick != st.Tick {
		t.Fatalf("state changed after game over: %+v -> %+v", frozen, st)
	}
}

func TestReverseIsIgnored(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		dx, dy := d.Delta()
		cfg := DefaultConfig()
		cfg.Snake = []Coord{{5, 5}, {5 - dx, 5 - dy}}
		cfg.Food = &Coord{0, 0}
		cfg.Heading = d
		e := mustNew(t, cfg)

		e.SetDirection(d.Opposite())
		e.Tick()

		st := e.State()
		if !st.Alive {
			t.Fatalf("heading %v: reversal killed the snake", d)
		}
		if st.Heading != d {
			t.Fatalf("heading %v: now %v after reversal request", d, st.Heading)
		}
		if want := (Coord{5, 5}).Step(d, 10); st.Head() != want {
			t.Fatalf("heading %v: head %v, want %v", d, st.Head(), want)
		}
	}
}

func TestReverseCheckedAgainstTickedHeading(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Snake = []Coord{{5, 5}, {4, 5}}
	cfg.Food = &Coord{0, 0}
	e := mustNew(t, cfg)

	// Up is accepted; Left reverses the ticked heading (Right) and is dropped
	// even though it would be a legal turn from the pending Up.
	e.SetDirection(Up)
	e.SetDirection(Left)
	e.Tick()

	st := e.State()
	if st.Heading != Up || st.Head() != (Coord{5, 4}) {
		t.Fatalf("heading %v head %v, want up (5,4)", st.Heading, st.Head())
	}
}

func TestDirectionsCoalesce(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Snake = []Coord{{5, 5}, {4, 5}}
	cfg.Food = &Coord{0, 0}
	e := mustNew(t, cfg)

	e.SetDirection(Up)
	e.SetDirection(Down)
	e.Tick()

	if st := e.State(); st.Heading != Down || st.Head() != (Coord{5, 6}) {
		t.Fatalf("heading %v head %v, want down (5,6)", st.Heading, st.Head())
	}
}

func TestInvalidDirectionDropped(t *testing.T) {
	e := mustNew(t, DefaultConfig())
	e.SetDirection(None)
	e.SetDirection(Direction(42))
	e.Tick()
	if st := e.State(); st.Heading != Right {
		t.Fatalf("heading %v, want right", st.Heading)
	}
}

func TestLawsHoldDuringRandomPlay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	cfg.Size = 6
	cfg.Food = nil
	e := mustNew(t, cfg)
	inputs := rand.New(rand.NewPCG(9, 9))
	dirs := []Direction{Up, Down, Left, Right}

	for i := 0; i < 2000 && !e.Over(); i++ {
		e.SetDirection(dirs[inputs.IntN(len(dirs))])
		pre := e.State()
		e.Tick()
		post := e.State()

		if post.Heading == pre.Heading.Opposite() && pre.Len() > 1 {
			t.Fatalf("tick %d: reversed from %v to %v", i, pre.Heading, post.Heading)
		}
		if !post.Alive {
			if !slices.Equal(pre.Snake, post.Snake) || pre.Food != post.Food {
				t.Fatalf("tick %d: state changed on collision", i)
			}
			continue
		}

		next := pre.Head().Step(post.Heading, cfg.Size)
		if post.Head() != next {
			t.Fatalf("tick %d: head %v, want %v", i, post.Head(), next)
		}
		if next == pre.Food {
			if post.Len() != pre.Len()+1 {
				t.Fatalf("tick %d: ate but length %d -> %d", i, pre.Len(), post.Len())
			}
			if post.Occupied(post.Food) {
				t.Fatalf("tick %d: food %v placed on the snake", i, post.Food)
			}
		} else if post.Len() != pre.Len() {
			t.Fatalf("tick %d: length %d -> %d without eating", i, pre.Len(), post.Len())
		}

		seen := make(map[Coord]bool, post.Len())
		for _, seg := range post.Snake {
			if seen[seg] {
				t.Fatalf("tick %d: duplicate segment %v while alive", i, seg)
			}
			seen[seg] = true
		}
	}
}

func TestSameSeedSameFood(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		cfg := DefaultConfig()
		cfg.Seed = seed
		cfg.Food = nil
		a, b := mustNew(t, cfg), mustNew(t, cfg)
		if fa, fb := a.State().Food, b.State().Food; fa != fb {
			t.Fatalf("seed %d: food %v vs %v", seed, fa, fb)
		}
		if a.Seed() != seed {
			t.Fatalf("seed %d reported as %d", seed, a.Seed())
		}
		if a.ID() == b.ID() {
			t.Fatal("games share an ID")
		}
	}
}

func TestFoodFillsLastFreeCell(t *testing.T) {
	cfg := Config{Size: 2, Seed: 1, Snake: []Coord{{0, 0}, {1, 0}, {1, 1}}, Heading: Down}
	e := mustNew(t, cfg)
	if food := e.State().Food; food != (Coord{0, 1}) {
		t.Fatalf("food %v, want the only free cell (0,1)", food)
	}
}

func TestBoardFullPanics(t *testing.T) {
	cfg := Config{Size: 2, Seed: 1, Snake: []Coord{{0, 0}, {1, 0}, {1, 1}}, Food: &Coord{0, 1}, Heading: Down}
	e := mustNew(t, cfg)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrBoardFull) {
			t.Fatalf("recovered %v, want ErrBoardFull", r)
		}
	}()
	e.Tick()
	t.Fatal("Tick should panic when the board is full")
}

func TestSubscribeReceivesTicks(t *testing.T) {
	e := mustNew(t, DefaultConfig())
	ch, cancel := e.Subscribe(4)

	e.Tick()
	e.Tick()
	first, second := <-ch, <-ch
	if first.Tick != 1 || second.Tick != 2 {
		t.Fatalf("got ticks %d and %d, want 1 and 2", first.Tick, second.Tick)
	}
	if first.ID != e.ID() {
		t.Fatal("snapshot carries the wrong game ID")
	}

	cancel()
	cancel()
	if _, ok := <-ch; ok {
		t.Fatal("channel should be closed after cancel")
	}
	e.Tick()
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	e := mustNew(t, DefaultConfig())
	ch, cancel := e.Subscribe(1)
	defer cancel()

	for i := 0; i < 3; i++ {
		e.Tick()
	}
	if st := <-ch; st.Tick != 3 {
		t.Fatalf("buffered snapshot tick %d, want 3", st.Tick)
	}
	select {
	case st := <-ch:
		t.Fatalf("unexpected extra snapshot at tick %d", st.Tick)
	default:
	}
}

func TestLaggingSubscriberSeesGameOver(t *testing.T) {
	food := Coord{0, 0}
	e := mustNew(t, Config{
		Size:    10,
		Seed:    1,
		Snake:   []Coord{{5, 5}, {4, 5}, {4, 4}, {5, 4}, {6, 4}, {7, 4}},
		Food:    &food,
		Heading: Right,
	})
	ch, cancel := e.Subscribe(1)
	defer cancel()

	e.Tick()
	e.SetDirection(Up)
	e.Tick()
	if !e.Over() {
		t.Fatal("second tick should run into the tail")
	}

	var last State
	for drained := false; !drained; {
		select {
		case last = <-ch:
		default:
			drained = true
		}
	}
	if last.Tick != 2 || last.Alive {
		t.Fatalf("last snapshot tick=%d alive=%v, want tick=2 alive=false", last.Tick, last.Alive)
	}
}

func TestEngineSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 7
	cfg.Food = nil
	e := mustNew(t, cfg)
	if got := e.Size(); got.W != 7 || got.H != 7 || got.Area() != 49 {
		t.Fatalf("size %+v, want 7x7", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := mustNew(t, DefaultConfig())
	st := e.State()
	st.Snake[0] = Coord{0, 0}
	if e.State().Head() != (Coord{5, 5}) {
		t.Fatal("mutating a snapshot changed the engine")
	}
}

func TestConcurrentUse(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Food = nil
	cfg.Seed = 3
	e := mustNew(t, cfg)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			e.SetDirection([]Direction{Up, Left, Down, Right}[i%4])
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			if st := e.State(); st.Len() < 1 {
				t.Error("empty snapshot")
				return
			}
		}
	}()
	for i := 0; i < 200; i++ {
		e.Tick()
	}
	wg.Wait()
}

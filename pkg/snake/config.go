package snake

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultSize is the edge length of the board used when none is configured.
const DefaultSize = 10

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config controls the starting position of a game.
type Config struct {
	// Size is the edge length N of the N*N board.
	Size int
	// Seed drives food placement. Zero seeds from the clock.
	Seed int64
	// Snake is the starting body, head first. Empty means a single segment
	// in the centre of the board.
	Snake []Coord
	// Food is the first food cell. Nil places it randomly.
	Food *Coord
	// Heading is the initial direction of travel.
	Heading Direction
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:    DefaultSize,
		Food:    &Coord{X: 3, Y: 3},
		Heading: Right,
	}
}

// start returns the starting body.
func (c Config) start() []Coord {
	if len(c.Snake) > 0 {
		return c.Snake
	}
	return []Coord{{X: c.Size / 2, Y: c.Size / 2}}
}

// Validate reports the first problem with the configuration.
func (c Config) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("%w: size %d, need at least 2", ErrInvalidConfig, c.Size)
	}
	if !c.Heading.Valid() {
		return fmt.Errorf("%w: heading %v", ErrInvalidConfig, c.Heading)
	}
	body := c.start()
	seen := make(map[Coord]struct{}, len(body))
	for i, seg := range body {
		if !seg.In(c.Size) {
			return fmt.Errorf("%w: segment %d at %v is off the %dx%d board", ErrInvalidConfig, i, seg, c.Size, c.Size)
		}
		if _, dup := seen[seg]; dup {
			return fmt.Errorf("%w: segment %d at %v overlaps the body", ErrInvalidConfig, i, seg)
		}
		seen[seg] = struct{}{}
	}
	if c.Food != nil {
		if !c.Food.In(c.Size) {
			return fmt.Errorf("%w: food %v is off the board", ErrInvalidConfig, *c.Food)
		}
		if _, hit := seen[*c.Food]; hit {
			return fmt.Errorf("%w: food %v is on the snake", ErrInvalidConfig, *c.Food)
		}
	} else if len(body) >= c.Size*c.Size {
		return fmt.Errorf("%w: no free cell for food", ErrInvalidConfig)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["heading"]; ok {
		if d, ok := ParseDirection(v); ok {
			c.Heading = d
		}
	}
	// The default food cell only makes sense on boards where it is free.
	if c.Food != nil && c.Validate() != nil {
		c.Food = nil
	}
	if v, ok := cfg["food"]; ok {
		if strings.EqualFold(strings.TrimSpace(v), "random") {
			c.Food = nil
		} else if food, ok := parseCoord(v); ok {
			c.Food = &food
		}
	}
	return c
}

func parseCoord(s string) (Coord, bool) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return Coord{}, false
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coord{}, false
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coord{}, false
	}
	return Coord{X: x, Y: y}, true
}

package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"grid-snake/pkg/snake"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later keys win.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return m
}

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Size     int
	Seed     int64
	Interval time.Duration
	Scale    int
	Set      KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Size: snake.DefaultSize, Interval: 200 * time.Millisecond, Scale: 20}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "board edge length")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for food placement (0 = clock)")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between ticks")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.Var(&c.Set, "set", "engine override in key=value form (repeatable): n, seed, food, heading")
}

// Game returns the engine configuration. Values from -set take precedence
// over -size and -seed.
func (c *Config) Game() snake.Config {
	m := map[string]string{
		"n":    fmt.Sprint(c.Size),
		"seed": fmt.Sprint(c.Seed),
	}
	for k, v := range c.Set.Map() {
		m[k] = v
	}
	return snake.FromMap(m)
}

// Validate checks driver settings and the resulting engine configuration.
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.Interval)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	// FromMap ignores sizes it cannot use, so catch them before they fall
	// back to the default board.
	if c.Size < 2 {
		return fmt.Errorf("%w: size %d, need at least 2", snake.ErrInvalidConfig, c.Size)
	}
	return c.Game().Validate()
}

package main

import (
	"flag"
	"io"
	"time"

	"snake-arcade/game/types"

	"github.com/pkg/errors"
)

// Config holds the command-line settings
type Config struct {
	Speed    int    // Base step interval in milliseconds at speed 1.0
	GridSize int    // Cells per side
	CellSize int    // Window pixels per cell
	Terminal bool   // Use the terminal frontend instead of a window
	Mute     bool   // Disable audio
	DataDir  string // Where gamestats.json lives
	Debug    bool   // Write logs to logs/snake.log
	Seed     uint64 // Food placement seed, 0 uses the clock
}

func DefaultConfig() Config {
	return Config{
		Speed:    types.BaseIntervalMs,
		GridSize: types.DefaultGridSize,
		CellSize: 22,
		DataDir:  "data",
	}
}

// parseFlags reads args into a Config on top of the defaults
func parseFlags(args []string, output io.Writer) (Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Speed, "speed", cfg.Speed, "Milliseconds per step at 1.0x (lower = faster)")
	fs.IntVar(&cfg.GridSize, "grid", cfg.GridSize, "Cells per side of the board")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Pixels per cell in the window")
	fs.BoolVar(&cfg.Terminal, "term", cfg.Terminal, "Play in the terminal")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable sound")
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "Directory for the best score file")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging to logs/")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Food placement seed (0 = random)")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	if c.Speed <= 0 {
		return errors.Errorf("speed must be positive, got %d", c.Speed)
	}
	if c.GridSize < types.MinGridSize {
		return errors.Errorf("grid must be at least %d, got %d", types.MinGridSize, c.GridSize)
	}
	if c.CellSize < 4 {
		return errors.Errorf("cell must be at least 4 pixels, got %d", c.CellSize)
	}
	if c.DataDir == "" {
		return errors.New("data directory must not be empty")
	}
	return nil
}

func (c Config) BaseInterval() time.Duration {
	return time.Duration(c.Speed) * time.Millisecond
}

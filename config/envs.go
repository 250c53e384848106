package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/beka-birhanu/vinom-ballmaze/game/layout"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrInvalidValue = errors.New("invalid configuration value")

// Config holds the application's configuration values.
type Config struct {
	Rows       int           `yaml:"rows"`      // Maze rows
	Cols       int           `yaml:"cols"`      // Maze columns
	Layout     layout.Config `yaml:"layout"`    // Scene geometry
	Impulse    float64       `yaml:"impulse"`   // Ball velocity delta per input intent
	Seed       int64         `yaml:"seed"`      // Fixed RNG seed; 0 draws a fresh seed every round
	LogLevel   string        `yaml:"log_level"` // debug, info, warn or error
	ConfigFile string        `yaml:"-"`         // Optional YAML overlay that was applied
	DotEnv     bool          `yaml:"-"`         // Whether a .env file was loaded
}

// Default returns a 3x3 board with 200x200 cells.
func Default() Config {
	return Config{
		Rows:     3,
		Cols:     3,
		Layout:   layout.DefaultConfig(),
		Impulse:  5,
		LogLevel: "info",
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// MAZE_CONFIG_FILE, then individual environment variables. Variables from the
// given .env files (".env" when none are given) are loaded first but never
// override the real environment.
func Load(envFiles ...string) (*Config, error) {
	cfg := Default()
	cfg.DotEnv = godotenv.Load(envFiles...) == nil

	if path := getEnvWithDefault("MAZE_CONFIG_FILE", ""); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
		cfg.ConfigFile = path
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the maze dimensions and the layout geometry.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: maze must be at least 1x1, got %dx%d", ErrInvalidValue, c.Rows, c.Cols)
	}
	if c.Impulse <= 0 {
		return fmt.Errorf("%w: impulse must be positive, got %v", ErrInvalidValue, c.Impulse)
	}
	return c.Layout.Validate()
}

// loadFile decodes a YAML overlay onto cfg. Keys absent from the file keep their current values.
func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	// An empty file has no document and overrides nothing.
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"MAZE_ROWS", &cfg.Rows},
		{"MAZE_COLS", &cfg.Cols},
	}
	for _, v := range ints {
		if err := lookupInt(v.key, v.dst); err != nil {
			return err
		}
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"MAZE_CELL_WIDTH", &cfg.Layout.CellWidth},
		{"MAZE_CELL_HEIGHT", &cfg.Layout.CellHeight},
		{"MAZE_WALL_THICKNESS", &cfg.Layout.WallThickness},
		{"MAZE_BOUNDARY_THICKNESS", &cfg.Layout.BoundaryThickness},
		{"MAZE_GOAL_FRACTION", &cfg.Layout.GoalSizeFraction},
		{"MAZE_BALL_FRACTION", &cfg.Layout.StartRadiusFraction},
		{"MAZE_IMPULSE", &cfg.Impulse},
	}
	for _, v := range floats {
		if err := lookupFloat(v.key, v.dst); err != nil {
			return err
		}
	}

	if value, exists := os.LookupEnv("MAZE_SEED"); exists {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: environment variable MAZE_SEED must be an integer: %v", ErrInvalidValue, err)
		}
		cfg.Seed = seed
	}

	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", cfg.LogLevel)
	return nil
}

// lookupInt overwrites dst when key is set. A value that is not an integer is an error.
func lookupInt(key string, dst *int) error {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: environment variable %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	*dst = n
	return nil
}

// lookupFloat overwrites dst when key is set. A value that is not a number is an error.
func lookupFloat(key string, dst *float64) error {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%w: environment variable %s must be a number: %v", ErrInvalidValue, key, err)
	}
	*dst = f
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

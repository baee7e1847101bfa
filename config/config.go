// Package config layers gomaze settings: a .env file, an optional YAML file,
// then GOMAZE_* environment variables. Command-line flags are applied on top
// by the cmd package.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/they4kman/gomaze/game"
	"gopkg.in/yaml.v2"
)

// DefaultPath is read when no config file is named and it exists
const DefaultPath = "gomaze.yaml"

const envPrefix = "GOMAZE_"

// File holds every setting that may come from a config file or environment
type File struct {
	// nil when unset; 0 fits the maze to the screen
	Width  *int  `yaml:"width"`
	Height *int  `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Tick string `yaml:"tick"` // e.g. "40ms"
	Step int    `yaml:"step"`

	// Key name to direction name, e.g. {"ArrowUp": "up", "w": "up"}
	Keys map[string]string `yaml:"keys"`

	UI          string  `yaml:"ui"`
	Scale       float64 `yaml:"scale"`
	Spritesheet string  `yaml:"spritesheet"`
	KeyHold     string  `yaml:"key_hold"` // terminal only

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Load reads .env (if present), then the YAML file at path, then environment
// overrides. An empty path falls back to DefaultPath when it exists.
func Load(path string) (*File, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).Warn(".env file could not be loaded")
	}

	file := &File{}

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.UnmarshalStrict(data, file); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := file.applyEnv(); err != nil {
		return nil, err
	}
	return file, nil
}

func (file *File) applyEnv() error {
	var err error
	if file.Width, err = getEnvAsOptionalInt("WIDTH", file.Width); err != nil {
		return err
	}
	if file.Height, err = getEnvAsOptionalInt("HEIGHT", file.Height); err != nil {
		return err
	}
	if file.Step, err = getEnvAsInt("STEP", file.Step); err != nil {
		return err
	}
	seed, err := getEnvAsInt("SEED", int(file.Seed))
	if err != nil {
		return err
	}
	file.Seed = int64(seed)

	file.Tick = getEnvWithDefault("TICK", file.Tick)
	file.UI = getEnvWithDefault("UI", file.UI)
	file.Spritesheet = getEnvWithDefault("SPRITESHEET", file.Spritesheet)
	file.KeyHold = getEnvWithDefault("KEY_HOLD", file.KeyHold)
	file.LogLevel = getEnvWithDefault("LOG_LEVEL", file.LogLevel)
	file.LogFile = getEnvWithDefault("LOG_FILE", file.LogFile)

	if value, exists := os.LookupEnv(envPrefix + "SCALE"); exists {
		scale, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("environment variable %sSCALE must be a number: %w", envPrefix, err)
		}
		file.Scale = scale
	}
	return nil
}

// Apply copies the game settings that are set in the file onto config
func (file *File) Apply(config *game.GameConfig) error {
	if file.Width != nil {
		config.Width = *file.Width
	}
	if file.Height != nil {
		config.Height = *file.Height
	}
	if file.Seed != 0 {
		config.Seed = file.Seed
	}
	if file.Step != 0 {
		config.AnimationStep = file.Step
	}

	if file.Tick != "" {
		tick, err := time.ParseDuration(file.Tick)
		if err != nil {
			return fmt.Errorf("invalid tick %q: %w", file.Tick, err)
		}
		config.TickPeriod = tick
	}

	if len(file.Keys) > 0 {
		bindings, err := game.ParseKeyBindings(file.Keys)
		if err != nil {
			return err
		}
		config.Bindings = bindings
	}

	return nil
}

// KeyHoldDuration parses KeyHold, returning def when unset
func (file *File) KeyHoldDuration(def time.Duration) (time.Duration, error) {
	if file.KeyHold == "" {
		return def, nil
	}
	hold, err := time.ParseDuration(file.KeyHold)
	if err != nil {
		return 0, fmt.Errorf("invalid key_hold %q: %w", file.KeyHold, err)
	}
	return hold, nil
}

// getEnvWithDefault retrieves a GOMAZE_ environment variable or returns a default value if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(envPrefix + key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves a GOMAZE_ environment variable as an integer, or the default if not set
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(envPrefix + key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s%s must be an integer: %w", envPrefix, key, err)
	}
	return n, nil
}

// getEnvAsOptionalInt is getEnvAsInt for settings where 0 differs from unset
func getEnvAsOptionalInt(key string, defaultValue *int) (*int, error) {
	if _, exists := os.LookupEnv(envPrefix + key); !exists {
		return defaultValue, nil
	}
	n, err := getEnvAsInt(key, 0)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// config.go — runtime configuration of stack capture.
//
// Nothing here is required: without Configure the strategy chosen by the init
// probe applies. LoadConfig reads the same settings from the environment,
// optionally seeded from dotenv files.
package stderror

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned when a Config cannot be applied.
var ErrInvalidConfig = errors.New("stderror: invalid config")

// StackMode selects how traces are captured.
type StackMode string

const (
	// StackAuto uses the probe result: structured when the runtime supports it.
	StackAuto StackMode = "auto"
	// StackStructured resolves frames and skips the constructor frames.
	StackStructured StackMode = "structured"
	// StackSnapshot stores runtime/debug.Stack text, constructor frames included.
	StackSnapshot StackMode = "snapshot"
)

// Environment variables read by LoadConfig.
const (
	EnvStackMode  = "STDERROR_STACK_MODE"
	EnvStackDepth = "STDERROR_STACK_DEPTH"
)

// Config holds the stack capture settings.
type Config struct {
	StackMode StackMode
	// MaxDepth bounds structured traces; <= 0 means the default (64).
	MaxDepth int
}

// LoadConfig reads the settings from envFiles (dotenv format, later files
// overriding earlier ones) and then from the process environment, which wins.
// Unset values fall back to auto mode and the default depth.
func LoadConfig(envFiles ...string) (Config, error) {
	vars := map[string]string{}
	if len(envFiles) > 0 {
		read, err := godotenv.Read(envFiles...)
		if err != nil {
			return Config{}, fmt.Errorf("read env files: %w", err)
		}
		vars = read
	}

	cfg := Config{
		StackMode: StackMode(strings.ToLower(getEnv(vars, EnvStackMode, string(StackAuto)))),
		MaxDepth:  defaultMaxDepth,
	}

	if raw := getEnv(vars, EnvStackDepth, ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", EnvStackDepth, raw, ErrInvalidConfig)
		}
		cfg.MaxDepth = n
	}

	return cfg, cfg.Validate()
}

// Validate reports whether cfg can be applied.
func (c Config) Validate() error {
	switch c.StackMode {
	case "", StackAuto, StackStructured, StackSnapshot:
		return nil
	default:
		return fmt.Errorf("stack mode %q: %w", c.StackMode, ErrInvalidConfig)
	}
}

// Configure switches the capture strategy for errors constructed from now on.
// Existing instances keep their traces.
func Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	mode := cfg.StackMode
	if mode == "" || mode == StackAuto {
		mode = probeStackMode()
	}
	depth := cfg.MaxDepth
	if depth <= 0 {
		depth = defaultMaxDepth
	}

	activeCapturer.Store(&capturer{mode: mode, depth: depth})
	return nil
}

func getEnv(vars map[string]string, key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if v := vars[key]; v != "" {
		return v
	}
	return fallback
}

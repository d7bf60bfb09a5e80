package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/hidden/internal/dynamo"
)

const (
	DefaultWidth    = 1280
	DefaultHeight   = 720
	DefaultFPS      = 60
	DefaultSeed     = 0 // 0 picks a seed from the clock
	DefaultRenderer = "gui"
	DefaultScenario = "idle"
)

// Environment overrides, read from the process environment or a .env file.
const (
	EnvSeed       = "HIDDEN_SEED"
	EnvFPS        = "HIDDEN_FPS"
	EnvTitleImage = "HIDDEN_TITLE_IMAGE"
)

// Config covers presentation only. The airflow's own constants are fixed.
type Config struct {
	Window     WindowConfig `yaml:"window"`
	Seed       int64        `yaml:"seed"`
	TitleImage string       `yaml:"title_image"`
	Renderer   string       `yaml:"renderer"`
	Scenario   string       `yaml:"scenario"`
}

type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	FPS        int  `yaml:"fps"`
	Fullscreen bool `yaml:"fullscreen"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
		},
		Seed:     DefaultSeed,
		Renderer: DefaultRenderer,
		Scenario: DefaultScenario,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", dynamo.ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", dynamo.ErrInvalidConfig, c.Window.FPS)
	}
	switch c.Renderer {
	case "gui", "tui":
	default:
		return fmt.Errorf("%w: renderer %q (want gui or tui)", dynamo.ErrInvalidConfig, c.Renderer)
	}
	if _, ok := Scenarios[c.Scenario]; !ok {
		return fmt.Errorf("%w: %q", dynamo.ErrUnknownScenario, c.Scenario)
	}
	return nil
}

// ApplyEnv loads envFiles (missing files are skipped) into the process
// environment and applies any HIDDEN_* overrides to c.
func (c *Config) ApplyEnv(envFiles ...string) error {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", dynamo.ErrInvalidConfig, EnvSeed, v)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvFPS); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", dynamo.ErrInvalidConfig, EnvFPS, v)
		}
		c.Window.FPS = fps
	}
	if v := os.Getenv(EnvTitleImage); v != "" {
		c.TitleImage = v
	}
	return c.Validate()
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Poll    PollConfig    `yaml:"poll"`
	Dot     DotConfig     `yaml:"dot"`
	Sinks   SinksConfig   `yaml:"sinks"`
	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type PollConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// DotConfig controls graph dumps taken while a pipeline's position lies
// strictly between From and To.
type DotConfig struct {
	Dir  string        `yaml:"dir"`
	From time.Duration `yaml:"from"`
	To   time.Duration `yaml:"to"`
}

// SinksConfig holds gst-launch fragments placed after each proxysrc.
type SinksConfig struct {
	Video string `yaml:"video"`
	Audio string `yaml:"audio"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// GetConfigWithDefaults returns default configuration values
func GetConfigWithDefaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Simple player",
			Width:  900,
			Height: 100,
		},
		Poll: PollConfig{
			Interval: time.Second,
		},
		Dot: DotConfig{
			Dir:  "/tmp",
			From: 5 * time.Second,
			To:   6 * time.Second,
		},
		Sinks: SinksConfig{
			Video: "autovideosink",
			Audio: "autoaudiosink",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file
// yields the defaults unchanged.
func Load(path string) (*Config, error) {
	config := GetConfigWithDefaults()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %gx%g", c.Window.Width, c.Window.Height)
	}
	if c.Poll.Interval <= 0 {
		return fmt.Errorf("invalid poll interval: %s (must be positive)", c.Poll.Interval)
	}
	if c.Dot.To < c.Dot.From {
		return fmt.Errorf("invalid dot window: %s-%s", c.Dot.From, c.Dot.To)
	}
	if c.Sinks.Video == "" || c.Sinks.Audio == "" {
		return errors.New("video and audio sinks must be set")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}
	return nil
}

// ResolveInput turns a media file path into an absolute file:// URI.
func ResolveInput(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty media path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}

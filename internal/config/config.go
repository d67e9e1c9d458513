package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/youruser/cardmaker/internal/assets"
	"github.com/youruser/cardmaker/internal/cards"
	"github.com/youruser/cardmaker/internal/fonts"
	"github.com/youruser/cardmaker/internal/util"
)

// Config represents the application configuration
type Config struct {
	Assets AssetsConfig `toml:"assets"`
	Fonts  FontsConfig  `toml:"fonts"`
	Layout LayoutConfig `toml:"layout"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

type AssetsConfig struct {
	Dir                   string `toml:"dir"`
	BaseURL               string `toml:"base_url"`
	ResolveTimeoutSeconds int    `toml:"resolve_timeout_seconds"`
	Cache                 bool   `toml:"cache"`
}

type FontsConfig struct {
	// Families maps a family name to a font file.
	Families map[string]string `toml:"families"`
}

type LayoutConfig struct {
	Languages map[string]cards.LayoutOffsets `toml:"languages"`
}

type ServerConfig struct {
	Port string `toml:"port"`
	// MaxBodyMB caps render request bodies. Zero keeps the API default.
	MaxBodyMB int `toml:"max_body_mb"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func Default() *Config {
	return &Config{
		Assets: AssetsConfig{
			Dir:                   "assets",
			ResolveTimeoutSeconds: 10,
			Cache:                 true,
		},
		Server: ServerConfig{Port: "8080", MaxBodyMB: 48},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// DefaultPath returns the path to the config file
func DefaultPath() string {
	return filepath.Join(GetXDGConfigHome(), "cardmaker", "config.toml")
}

// Load reads the config file at path on top of the defaults. A missing
// file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	// Relative paths in the file are relative to the file.
	base := filepath.Dir(path)
	if cfg.Assets.BaseURL == "" && !filepath.IsAbs(cfg.Assets.Dir) {
		cfg.Assets.Dir = filepath.Join(base, cfg.Assets.Dir)
	}
	for name, p := range cfg.Fonts.Families {
		if !filepath.IsAbs(p) {
			cfg.Fonts.Families[name] = filepath.Join(base, p)
		}
	}
	return cfg, nil
}

// Write encodes cfg to path, creating the directory.
func Write(path string, cfg *Config) error {
	file, err := util.CreateFile(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()
	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// Resolver returns the asset store the config points at.
func (c *Config) Resolver() assets.Resolver {
	if c.Assets.BaseURL != "" {
		return assets.NewHTTPResolver(c.Assets.BaseURL)
	}
	return assets.NewDirResolver(c.Assets.Dir)
}

func (c *Config) ResolveTimeout() time.Duration {
	return time.Duration(c.Assets.ResolveTimeoutSeconds) * time.Second
}

// FontRegistry loads the configured font files over the embedded fonts.
// A font that cannot be read or parsed is an error.
func (c *Config) FontRegistry() (*fonts.Registry, error) {
	reg := fonts.NewRegistry()
	for name, p := range c.Fonts.Families {
		if err := reg.RegisterFile(name, p); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// LanguageOffsets merges the configured languages over the built-in table.
func (c *Config) LanguageOffsets() map[string]cards.LayoutOffsets {
	out := make(map[string]cards.LayoutOffsets, len(cards.DefaultLanguageOffsets)+len(c.Layout.Languages))
	for k, v := range cards.DefaultLanguageOffsets {
		out[k] = v
	}
	for k, v := range c.Layout.Languages {
		out[k] = v
	}
	return out
}

// Logger builds the slog logger described by the log section.
func (c *Config) Logger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.Log.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q", c.Log.Format)
}

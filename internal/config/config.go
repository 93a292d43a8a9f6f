package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName   = "chorus"
	envPrefix = "CHORUS_"
)

type Config struct {
	DataDir      string          `koanf:"data_dir"`      // directory holding the dataset CSV files
	TrendingFile string          `koanf:"trending_file"` // relative to data_dir
	Variants     []VariantConfig `koanf:"variants"`      // empty means the built-in clusterings
	Notify       bool            `koanf:"notify"`        // desktop notification for every drawn song (terminal UI)
	Icons        string          `koanf:"icons"`         // terminal UI icon style: "nerd", "unicode" or "none"

	Embed  EmbedConfig  `koanf:"embed"`
	Server ServerConfig `koanf:"server"`
	Log    LogConfig    `koanf:"log"`
}

// VariantConfig declares one selectable main dataset.
type VariantConfig struct {
	Description string `koanf:"description"`
	File        string `koanf:"file"` // relative to data_dir
	Curated     bool   `koanf:"curated"`
}

// EmbedConfig configures the embedded player.
type EmbedConfig struct {
	BaseURL string `koanf:"base_url"` // track id is appended
	Width   int    `koanf:"width"`
	Height  int    `koanf:"height"`
}

// ServerConfig configures `chorus serve`.
type ServerConfig struct {
	Addr              string   `koanf:"addr"`
	SessionTTLMinutes int      `koanf:"session_ttl_minutes"` // idle time before a browser session is dropped
	AllowedOrigins    []string `koanf:"allowed_origins"`     // CORS origins allowed on the JSON API
	RateLimit         int      `koanf:"rate_limit"`          // API requests per minute per IP; negative disables
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error, disabled
	Format string `koanf:"format"` // "json" or "console"
	File   string `koanf:"file"`   // terminal UI log file; empty means the XDG state dir
}

// Load reads config files then CHORUS_* environment variables.
// explicit, when set, is loaded last among files and must exist.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}
	if explicit != "" {
		if err := k.Load(file.Provider(explicit), toml.Parser()); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.DataDir != "" {
		cfg.DataDir = expandPath(cfg.DataDir)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}
	cfg.Embed.BaseURL = strings.TrimSpace(cfg.Embed.BaseURL)

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/chorus/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

// envKey maps CHORUS_SERVER_ADDR to server.addr and CHORUS_DATA_DIR to data_dir.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	for _, section := range []string{"embed", "server", "log"} {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + rest
		}
	}
	return key
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetDataDir returns the dataset directory, defaulting to the working directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return "."
	}
	return c.DataDir
}

// GetTrendingFile returns the trending table file name.
func (c *Config) GetTrendingFile() string {
	if c.TrendingFile == "" {
		return "df_BB_to_app.csv"
	}
	return c.TrendingFile
}

// GetEmbedConfig returns the embed configuration with defaults applied.
func (c *Config) GetEmbedConfig() EmbedConfig {
	cfg := c.Embed
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://open.spotify.com/embed/track/"
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.Width <= 0 {
		cfg.Width = 320
	}
	if cfg.Height <= 0 {
		cfg.Height = 80
	}
	return cfg
}

// GetServerConfig returns the server configuration with defaults applied.
func (c *Config) GetServerConfig() ServerConfig {
	cfg := c.Server
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8501"
	}
	if cfg.SessionTTLMinutes <= 0 {
		cfg.SessionTTLMinutes = 60
	}
	switch {
	case cfg.RateLimit == 0:
		cfg.RateLimit = 120
	case cfg.RateLimit < 0:
		cfg.RateLimit = 0
	}
	return cfg
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.Format != "console" {
		cfg.Format = "json"
	}
	if cfg.File == "" {
		cfg.File = filepath.Join(xdg.StateHome, appName, appName+".log")
	}
	return cfg
}

//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/datasets",
			expected: filepath.Join(home, "datasets"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/srv/chorus",
			expected: "/srv/chorus",
		},
		{
			name:     "relative path unchanged",
			input:    "data",
			expected: "data",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}
	if filepath.Base(filepath.Dir(paths[0])) != "chorus" {
		t.Errorf("first config path = %q, want a chorus config dir", paths[0])
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CHORUS_DATA_DIR", "data_dir"},
		{"CHORUS_TRENDING_FILE", "trending_file"},
		{"CHORUS_SERVER_ADDR", "server.addr"},
		{"CHORUS_SERVER_SESSION_TTL_MINUTES", "server.session_ttl_minutes"},
		{"CHORUS_LOG_LEVEL", "log.level"},
		{"CHORUS_EMBED_BASE_URL", "embed.base_url"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.in))
		})
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "chorus.toml")
	content := `
data_dir = "/srv/datasets"
trending_file = "hot.csv"
notify = true
icons = "nerd"

[[variants]]
description = "Small"
file = "small.csv"

[[variants]]
description = "Hand picked"
file = "picked.csv"
curated = true

[server]
addr = ":9000"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CHORUS_SERVER_ADDR", ":9100")
	t.Setenv("CHORUS_LOG_FORMAT", "console")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/datasets", cfg.GetDataDir())
	assert.Equal(t, "hot.csv", cfg.GetTrendingFile())
	assert.True(t, cfg.Notify)
	assert.Equal(t, "nerd", cfg.Icons)
	assert.Equal(t, []VariantConfig{
		{Description: "Small", File: "small.csv"},
		{Description: "Hand picked", File: "picked.csv", Curated: true},
	}, cfg.Variants)
	assert.Equal(t, ":9100", cfg.GetServerConfig().Addr)
	assert.Equal(t, "debug", cfg.GetLogConfig().Level)
	assert.Equal(t, "console", cfg.GetLogConfig().Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestGetters_Defaults(t *testing.T) {
	cfg := Config{}

	assert.Equal(t, ".", cfg.GetDataDir())
	assert.Equal(t, "df_BB_to_app.csv", cfg.GetTrendingFile())

	embed := cfg.GetEmbedConfig()
	assert.Equal(t, "https://open.spotify.com/embed/track/", embed.BaseURL)
	assert.Equal(t, 320, embed.Width)
	assert.Equal(t, 80, embed.Height)

	server := cfg.GetServerConfig()
	assert.Equal(t, "127.0.0.1:8501", server.Addr)
	assert.Equal(t, 60, server.SessionTTLMinutes)
	assert.Equal(t, 120, server.RateLimit)

	log := cfg.GetLogConfig()
	assert.Equal(t, "info", log.Level)
	assert.Equal(t, "json", log.Format)
	assert.Equal(t, "chorus.log", filepath.Base(log.File))
}

func TestGetServerConfig_NegativeRateLimitDisables(t *testing.T) {
	cfg := Config{Server: ServerConfig{RateLimit: -1}}

	assert.Equal(t, 0, cfg.GetServerConfig().RateLimit)
}

func TestGetEmbedConfig_NormalizesBaseURL(t *testing.T) {
	cfg := Config{Embed: EmbedConfig{BaseURL: "https://example.test/embed", Width: 400, Height: -1}}

	embed := cfg.GetEmbedConfig()

	assert.Equal(t, "https://example.test/embed/", embed.BaseURL)
	assert.Equal(t, 400, embed.Width)
	assert.Equal(t, 80, embed.Height)
}

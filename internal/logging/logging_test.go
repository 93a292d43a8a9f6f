package logging

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" info ", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestInit_JSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "json", Output: &buf})
	t.Cleanup(func() { Init(Config{Level: "disabled"}) })

	Debug().Msg("hidden")
	l := With("session")
	l.Info().Str("category", "Pop").Msg("category selected")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"component":"session"`)
	assert.Contains(t, out, `"category":"Pop"`)
	assert.Contains(t, out, `"message":"category selected"`)
}

func TestInit_Console(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "console", Output: &buf})
	t.Cleanup(func() { Init(Config{Level: "disabled"}) })

	Debug().Msg("visible")

	assert.Contains(t, buf.String(), "visible")
	assert.NotContains(t, buf.String(), `{"level"`)
}

func TestFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "chorus.log")

	w, err := FileWriter(path)
	require.NoError(t, err)
	defer w.Close()

	_, err = w.Write([]byte("line\n"))
	require.NoError(t, err)
	assert.FileExists(t, path)
}

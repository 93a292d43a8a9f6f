package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyBoldGradient_KeepsText(t *testing.T) {
	tests := []string{"", "x", "Song Recommender", "Beyoncé 🎵"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			got := ApplyBoldGradient(in, T().Primary, T().Secondary)
			assert.Equal(t, in, ansi.Strip(got))
		})
	}
}

func TestBlendColors_Endpoints(t *testing.T) {
	colors := blendColors(5, lipgloss.Color("#000000"), lipgloss.Color("#ffffff"))

	require.Len(t, colors, 5)
	assert.Equal(t, "#000000", colors[0].Hex())
	assert.Equal(t, "#ffffff", colors[4].Hex())
}

func TestToColor_ANSIFallsBackToGray(t *testing.T) {
	r, g, b, _ := toColor(lipgloss.Color("240")).RGBA()
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}

func TestThemeStylesAreCached(t *testing.T) {
	assert.Same(t, T().S(), T().S())
}

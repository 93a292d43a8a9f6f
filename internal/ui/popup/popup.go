package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/chorus/internal/ui/styles"
)

// SizeConfig defines how a popup should be sized.
type SizeConfig struct {
	WidthPct  int // Percentage of screen width (0 = auto-fit)
	HeightPct int // Percentage of screen height (0 = auto-fit)
	MaxWidth  int // Maximum width in columns (0 = no limit)
}

// SizeAuto fits the popup to its content.
var SizeAuto = SizeConfig{}

// RenderBordered wraps content in a rounded border and centers it.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := calculateDimensions(content, screenW, screenH, size)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(width-2). // Account for border
		Height(height-2).
		Padding(1, 2)

	return Center(boxStyle.Render(content), screenW, screenH)
}

// Center centers pre-rendered content in the terminal.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(content, "\n")
	boxWidth := maxLineWidth(content)

	padTop := max((termHeight-len(lines))/2, 0)
	padLeft := max((termWidth-boxWidth)/2, 0)

	var result strings.Builder
	for range padTop {
		result.WriteString(strings.Repeat(" ", termWidth) + "\n")
	}
	for _, line := range lines {
		result.WriteString(strings.Repeat(" ", padLeft))
		result.WriteString(line)
		result.WriteString("\n")
	}
	return result.String()
}

func calculateDimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}

	contentWidth := maxLineWidth(content) + 6 // padding + border
	if size.MaxWidth > 0 {
		contentWidth = min(contentWidth, size.MaxWidth)
	}
	contentWidth = min(contentWidth, screenW-4)

	contentHeight := strings.Count(content, "\n") + 1 + 4 // padding + border
	contentHeight = min(contentHeight, screenH-4)

	return contentWidth, contentHeight
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}

// Compose overlays a popup view on top of a base view. Visually blank popup
// lines leave the base untouched; other lines replace the base between the
// first and last visible popup columns. ANSI styling is preserved on both.
func Compose(base, popupView string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(popupView, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := len(plain) - len(strings.TrimLeft(plain, " "))
		endCol := ansi.StringWidth(strings.TrimRight(plain, " "))
		content := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Cut(baseLine, 0, startCol)
		if w := ansi.StringWidth(prefix); w < startCol {
			// A wide rune straddled the cut.
			prefix += strings.Repeat(" ", startCol-w)
		}

		result := prefix + content
		if endCol < width {
			suffix := ansi.Cut(baseLine, endCol, width)
			if w := ansi.StringWidth(suffix); w < width-endCol {
				suffix += strings.Repeat(" ", width-endCol-w)
			}
			result += suffix
		}
		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}

package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/heatrod/internal/render"
)

type styles struct {
	canvas lipgloss.Style
	stats  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	graph  lipgloss.Style
	help   lipgloss.Style
	paused lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		canvas: lipgloss.NewStyle().Foreground(t.Primary).Padding(1, 2),
		stats: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Border).
			Padding(1, 2).
			Width(44),
		header: lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(14),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		graph:  lipgloss.NewStyle().Foreground(t.Accent).Padding(1, 0),
		help:   lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		paused: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
	}
}

// HeatStrip renders values as width coloured blocks, sampling the nearest
// value for each block.
func HeatStrip(values []float64, width int, vmin, vmax float64) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	var b strings.Builder
	for k := 0; k < width; k++ {
		i := 0
		if width > 1 {
			i = k * (len(values) - 1) / (width - 1)
		}
		c := render.Plasma(render.Normalize(values[i], vmin, vmax))
		hex := fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("█"))
	}
	return b.String()
}

func to8(v float64) int {
	return int(v*255 + 0.5)
}

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dasdy/foamslides/model"
)

type styles struct {
	code   lipgloss.Style
	image  lipgloss.Style
	status lipgloss.Style
	empty  lipgloss.Style
}

func newStyles(theme model.Theme) styles {
	return styles{
		code: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color(theme.Graph)).
			Padding(0, 1),
		image: lipgloss.NewStyle().
			Foreground(color(theme.Highlight)).
			Italic(true),
		status: lipgloss.NewStyle().
			Foreground(color(theme.Background)).
			Background(color(theme.Main)).
			Bold(true).
			Padding(0, 1),
		empty: lipgloss.NewStyle().
			Faint(true),
	}
}

func color(c model.Color) lipgloss.Color {
	return lipgloss.Color(string(c))
}

func segmentStyle(seg model.Segment) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color(seg.Color)).Bold(seg.Bold)
}

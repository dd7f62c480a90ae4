package tui

import "github.com/charmbracelet/lipgloss"

// palette mirrors the page palette in terminal colors.
type palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Subtle     lipgloss.Color
	Border     lipgloss.Color
}

var (
	darkPalette = palette{
		Background: lipgloss.Color("#030712"),
		Foreground: lipgloss.Color("#F3F4F6"),
		Muted:      lipgloss.Color("#9CA3AF"),
		Subtle:     lipgloss.Color("#6B7280"),
		Border:     lipgloss.Color("#1F2937"),
	}
	lightPalette = palette{
		Background: lipgloss.Color("#F9FAFB"),
		Foreground: lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#4B5563"),
		Subtle:     lipgloss.Color("#4B5563"),
		Border:     lipgloss.Color("#E5E7EB"),
	}

	blue  = lipgloss.Color("#3B82F6")
	green = lipgloss.Color("#22C55E")

	accentColors = map[string]lipgloss.Color{
		"blue":   "#3B82F6",
		"cyan":   "#06B6D4",
		"purple": "#A855F7",
		"green":  "#22C55E",
		"orange": "#F97316",
		"pink":   "#EC4899",
		"red":    "#EF4444",
		"yellow": "#EAB308",
		"indigo": "#6366F1",
		"teal":   "#14B8A6",
	}
)

// styles is the style sheet for one theme.
type styles struct {
	Page       lipgloss.Style
	Nav        lipgloss.Style
	NavPlain   lipgloss.Style
	NavLink    lipgloss.Style
	Handle     lipgloss.Style
	Badge      lipgloss.Style
	Name       lipgloss.Style
	Tagline    lipgloss.Style
	Bio        lipgloss.Style
	Heading    lipgloss.Style
	Rule       lipgloss.Style
	Chip       lipgloss.Style
	CardTitle  lipgloss.Style
	CardBody   lipgloss.Style
	Link       lipgloss.Style
	Email      lipgloss.Style
	Footer     lipgloss.Style
	StatusLine lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	base := lipgloss.NewStyle().Foreground(p.Foreground)
	return styles{
		Page:     base.Background(p.Background),
		NavPlain: base.Padding(0, 1),
		Nav: base.Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.Border),
		NavLink:    lipgloss.NewStyle().Foreground(p.Muted).MarginLeft(2),
		Handle:     base.Bold(true),
		Badge:      lipgloss.NewStyle().Foreground(p.Muted).Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
		Name:       base.Bold(true).MarginTop(1),
		Tagline:    lipgloss.NewStyle().Foreground(p.Muted),
		Bio:        lipgloss.NewStyle().Foreground(p.Subtle),
		Heading:    lipgloss.NewStyle().Foreground(p.Subtle).Bold(true),
		Rule:       lipgloss.NewStyle().Foreground(blue),
		Chip:       lipgloss.NewStyle().Foreground(p.Muted),
		CardTitle:  base.Bold(true),
		CardBody:   lipgloss.NewStyle().Foreground(p.Muted),
		Link:       lipgloss.NewStyle().Foreground(p.Subtle).Underline(true),
		Email:      base.Bold(true),
		Footer:     lipgloss.NewStyle().Foreground(p.Subtle).Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(p.Border),
		StatusLine: lipgloss.NewStyle().Foreground(p.Subtle),
	}
}

func cardStyle(accent string, width int) lipgloss.Style {
	c, ok := accentColors[accent]
	if !ok {
		c = blue
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Padding(0, 2).
		MarginBottom(1).
		Width(width)
}

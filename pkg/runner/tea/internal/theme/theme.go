package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	Card   CardTheme
	Detail DetailTheme
	Footer FooterTheme
}

// HeaderTheme styles the title block above the list.
type HeaderTheme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Stats    lipgloss.Style
	Search   lipgloss.Style
	Count    lipgloss.Style
	Empty    lipgloss.Style
}

// CardTheme styles one entry in the list.
type CardTheme struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Category lipgloss.Style
	Mark     lipgloss.Style
}

// DetailTheme styles the single entry view.
type DetailTheme struct {
	Title   lipgloss.Style
	Arabic  lipgloss.Style
	Label   lipgloss.Style
	Body    lipgloss.Style
	Info    lipgloss.Style
	Nav     lipgloss.Style
	Font    lipgloss.Style
	Splash  lipgloss.Style
	Spinner lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	accent := lipgloss.Color("36")

	return Theme{
		Header: HeaderTheme{
			Title:    lipgloss.NewStyle().Foreground(accent).Bold(true),
			Subtitle: faint,
			Stats:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Search: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(0, 1),
			Count: faint.Italic(true),
			Empty: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Italic(true),
		},
		Card: CardTheme{
			Title:    lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Category: faint,
			Mark:     lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		},
		Detail: DetailTheme{
			Title:   lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true),
			Arabic:  lipgloss.NewStyle().Align(lipgloss.Right),
			Label:   lipgloss.NewStyle().Foreground(accent).Bold(true),
			Body:    lipgloss.NewStyle(),
			Info:    faint,
			Nav:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Font:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Splash:  lipgloss.NewStyle().Foreground(accent).Bold(true),
			Spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}

// fallbackBadge is used for entries without a usable category colour.
const fallbackBadge = "#0f766e"

// Badge returns the id badge style for a category colour. The text colour is
// black or white, whichever reads better on the background.
func Badge(hex string) lipgloss.Style {
	c := badgeColor(hex)
	fg := "#ffffff"
	if darkText(c) {
		fg = "#000000"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(fg)).
		Bold(true).
		Padding(0, 1)
}

func badgeColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(fallbackBadge)
	}
	return c
}

func darkText(c colorful.Color) bool {
	l, _, _ := c.Lab()
	return l > 0.6
}

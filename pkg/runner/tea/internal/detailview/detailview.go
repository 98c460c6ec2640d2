// Package detailview renders a single supplication for the reader.
package detailview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/xisnul/pkg/browser"
	"tableflip.dev/xisnul/pkg/dua"
	"tableflip.dev/xisnul/pkg/glyph"
	"tableflip.dev/xisnul/pkg/runner/tea/internal/theme"
)

// minWrap keeps very large fonts readable on narrow terminals.
const minWrap = 16

// State is everything the detail view needs to draw one entry.
type State struct {
	Entry       *dua.Entry
	Fonts       browser.Fonts
	Limits      browser.FontLimits
	Favorite    bool
	Bookmarked  bool
	HasPrevious bool
	HasNext     bool
}

// WrapWidth narrows width as size grows past def, so larger fonts show fewer
// characters per line.
func WrapWidth(width int, size, def float64) int {
	if width <= 0 {
		return 0
	}
	if size <= 0 || def <= 0 {
		return width
	}
	w := int(float64(width) * def / size)
	if w > width {
		w = width
	}
	if w < minWrap {
		w = minWrap
	}
	return w
}

// Render draws s at the given width.
func Render(s State, width int, th theme.Theme) string {
	e := s.Entry
	if e == nil {
		return ""
	}
	var b strings.Builder

	marks := glyph.Favorite.Glyph(s.Favorite).String() + " " + glyph.Bookmark.Glyph(s.Bookmarked).String()
	b.WriteString(theme.Badge(e.CategoryColor).Render(fmt.Sprint(e.ID)))
	b.WriteString(" ")
	b.WriteString(th.Detail.Title.Render(e.Title))
	b.WriteString("  ")
	b.WriteString(marks)
	b.WriteString("\n")
	if e.Category != "" {
		b.WriteString(th.Detail.Info.Render("[" + e.Category + "]"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if e.Arabic != "" {
		aw := WrapWidth(width, s.Fonts.Arabic, s.Limits.Arabic.Default)
		b.WriteString(th.Detail.Arabic.Width(width).Render(wordwrap.String(e.Arabic, aw)))
		b.WriteString("\n\n")
	}

	tw := WrapWidth(width, s.Fonts.Translation, s.Limits.Translation.Default)
	b.WriteString(th.Detail.Label.Render("MACNAHA:"))
	b.WriteString("\n")
	b.WriteString(th.Detail.Body.Render(wordwrap.String(e.Somali, tw)))
	b.WriteString("\n")
	if e.Translation != "" {
		b.WriteString("\n")
		b.WriteString(th.Detail.Body.Render(wordwrap.String(e.Translation, tw)))
		b.WriteString("\n")
	}

	if e.HasInfo() {
		b.WriteString("\n")
		if e.Source != "" {
			b.WriteString(th.Detail.Info.Render(wordwrap.String("Laga soo qaatay: "+e.Source, tw)))
			b.WriteString("\n")
		}
		if e.Context != "" {
			b.WriteString(th.Detail.Info.Render(wordwrap.String("Goobta: "+e.Context, tw)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Nav renders the previous/next affordances. A side is left blank when there
// is no neighbor in that direction.
func Nav(s State, width int, th theme.Theme) string {
	left, right := "", ""
	if s.HasPrevious {
		left = th.Detail.Nav.Render(glyph.Previous + " Hore")
	}
	if s.HasNext {
		right = th.Detail.Nav.Render("Xigta " + glyph.Next)
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// FontBar renders the A- / A / A+ controls with the current sizes.
func FontBar(s State, th theme.Theme) string {
	return th.Detail.Font.Render(fmt.Sprintf("A- (-)  A (0)  A+ (+)   %s / %s",
		size(s.Fonts.Arabic), size(s.Fonts.Translation)))
}

func size(v float64) string {
	if v == float64(int(v)) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.1f", v)
}

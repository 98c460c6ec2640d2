package printers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"tableflip.dev/xisnul/pkg/dua"
)

// Markdown renders e as a markdown document.
func Markdown(e *dua.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %d. %s\n\n", e.ID, e.Title)
	if e.Category != "" {
		fmt.Fprintf(&b, "_%s_\n\n", e.Category)
	}
	if e.Arabic != "" {
		fmt.Fprintf(&b, "> %s\n\n", e.Arabic)
	}
	fmt.Fprintf(&b, "**MACNAHA:**\n\n%s\n\n", e.Somali)
	if e.Translation != "" {
		fmt.Fprintf(&b, "%s\n\n", e.Translation)
	}
	if e.Source != "" {
		fmt.Fprintf(&b, "- Laga soo qaatay: %s\n", e.Source)
	}
	if e.Context != "" {
		fmt.Fprintf(&b, "- Goobta: %s\n", e.Context)
	}
	return b.String()
}

// Glamour renders the markdown for e for a terminal of the given width.
func (pp *PrettyPrint) Glamour(e *dua.Entry) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(pp.width()),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(Markdown(e))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(pp.out(), out)
	return err
}

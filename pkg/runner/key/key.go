// Package key prints the legend for marks and reader keys.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/xisnul/pkg/glyph"
)

// Key prints a legend of mark symbols and reader key bindings.
type Key struct {
	Out io.Writer
}

var readerKeys = [][2]string{
	{"type", "search (applied after a short pause)"},
	{"↑/↓", "move through the list"},
	{"enter", "open the entry under the cursor"},
	{"esc", "clear the search, or go back to the list"},
	{"←/h →/l", "previous / next entry by id"},
	{"f  ctrl+f", "toggle favorite"},
	{"b  ctrl+b", "toggle bookmark"},
	{"+ - 0", "larger / smaller / default text"},
	{"ctrl+c", "quit"},
}

// Do renders the legend.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	_, _ = fmt.Fprintln(out, "")
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Marks"), bold.Sprint("Key"), bold.Sprint("Meaning"))
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(g.Symbol, g.Key, g.Meaning)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")

	keys := uitable.New()
	keys.Separator = "  "
	keys.AddRow(bold.Sprint("Reader"), bold.Sprint("Action"))
	for _, row := range readerKeys {
		keys.AddRow(row[0], row[1])
	}
	keys.RightAlign(0)
	_, _ = fmt.Fprintln(out, keys)
	_, _ = fmt.Fprintln(out, "")
	return nil
}

package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/xisnul/pkg/browser"
	"tableflip.dev/xisnul/pkg/dua"
	"tableflip.dev/xisnul/pkg/glyph"
)

// Marks reports the favorite and bookmark state of an entry.
type Marks func(id int) (favorite, bookmark bool)

type PrettyPrint struct {
	Out   io.Writer
	Width int
	Marks Marks
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return 80
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)
	_, _ = c.Fprintln(pp.out(), " Duco")
}

// List prints one row per entry: id, marks, title and category.
func (pp *PrettyPrint) List(entries ...*dua.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = uint(pp.width() / 2)
	for _, e := range entries {
		id, title, category := e.Row()
		tbl.AddRow(id, pp.marks(e.ID), title, category)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl.String())
	pp.NewLine()
}

func (pp *PrettyPrint) marks(id int) string {
	fav, book := false, false
	if pp.Marks != nil {
		fav, book = pp.Marks(id)
	}
	return glyph.Favorite.Glyph(fav).String() + " " + glyph.Bookmark.Glyph(book).String()
}

// Detail prints the full text of e and which neighbors exist.
func (pp *PrettyPrint) Detail(e *dua.Entry, prev, next *dua.Entry) {
	w := pp.out()
	t := color.New(color.Bold, color.Underline)
	label := color.New(color.FgCyan, color.Bold)
	faint := color.New(color.Faint)

	_, _ = t.Fprintf(w, "%d. %s", e.ID, e.Title)
	_, _ = fmt.Fprintf(w, "  %s\n", pp.marks(e.ID))
	if e.Category != "" {
		_, _ = faint.Fprintf(w, "[%s]\n", e.Category)
	}
	_, _ = fmt.Fprintln(w, "")

	if e.Arabic != "" {
		_, _ = fmt.Fprintln(w, alignRight(wordwrap.String(e.Arabic, pp.width()), pp.width()))
		_, _ = fmt.Fprintln(w, "")
	}

	_, _ = label.Fprintln(w, "MACNAHA:")
	_, _ = fmt.Fprintln(w, wordwrap.String(e.Somali, pp.width()))
	if e.Translation != "" {
		_, _ = fmt.Fprintln(w, "")
		_, _ = fmt.Fprintln(w, wordwrap.String(e.Translation, pp.width()))
	}

	if e.HasInfo() {
		_, _ = fmt.Fprintln(w, "")
		if e.Source != "" {
			_, _ = faint.Fprintf(w, "Laga soo qaatay: %s\n", e.Source)
		}
		if e.Context != "" {
			_, _ = faint.Fprintf(w, "Goobta: %s\n", e.Context)
		}
	}

	var nav []string
	if prev != nil {
		nav = append(nav, glyph.Previous+" Hore: "+strconv.Itoa(prev.ID))
	}
	if next != nil {
		nav = append(nav, "Xigta: "+strconv.Itoa(next.ID)+" "+glyph.Next)
	}
	if len(nav) > 0 {
		_, _ = fmt.Fprintln(w, "")
		_, _ = faint.Fprintln(w, strings.Join(nav, "    "))
	}
}

func alignRight(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if pad := width - len([]rune(line)); pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// MarksFrom reports marks from stored preferences.
func MarksFrom(p browser.Prefs) Marks {
	fav := setOf(p.Favorites)
	book := setOf(p.Bookmarks)
	return func(id int) (bool, bool) {
		return fav[id], book[id]
	}
}

func setOf(ids []int) map[int]bool {
	m := make(map[int]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/xisnul/pkg/browser"
	"tableflip.dev/xisnul/pkg/dua"
)

func init() {
	color.NoColor = true
}

func TestListShowsMarks(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{
		Out: &buf,
		Marks: func(id int) (bool, bool) {
			return id == 2, false
		},
	}
	pp.List(
		&dua.Entry{ID: 1, Title: "Morning Dua", Category: "Subax"},
		&dua.Entry{ID: 2, Title: "Evening Dua"},
	)
	out := buf.String()
	if !strings.Contains(out, "Morning Dua") || !strings.Contains(out, "Subax") {
		t.Fatalf("missing row content: %q", out)
	}
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[1], "♥") || strings.Contains(lines[0], "♥") {
		t.Fatalf("favorite mark on wrong row: %q", out)
	}
}

func TestListEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.List()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected empty marker, got %q", buf.String())
	}
}

func TestDetail(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Width: 40}
	e := &dua.Entry{ID: 2, Title: "Evening Dua", Arabic: "أَمْسَيْنَا", Somali: "galab", Source: "Muslim"}
	pp.Detail(e, &dua.Entry{ID: 1}, nil)
	out := buf.String()
	for _, want := range []string{"2. Evening Dua", "MACNAHA:", "galab", "Laga soo qaatay: Muslim", "Hore: 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if strings.Contains(out, "Xigta") {
		t.Fatalf("next affordance shown without a next entry: %q", out)
	}
	if strings.Contains(out, "Goobta") {
		t.Fatalf("context shown without a context: %q", out)
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(&dua.Entry{ID: 1, Title: "Morning Dua", Somali: "subax", Context: "Subaxdii"})
	if !strings.HasPrefix(md, "# 1. Morning Dua") || !strings.Contains(md, "- Goobta: Subaxdii") {
		t.Fatalf("unexpected markdown %q", md)
	}
}

func TestMarksFrom(t *testing.T) {
	marks := MarksFrom(browser.Prefs{Favorites: []int{1}, Bookmarks: []int{1, 2}})
	if fav, book := marks(1); !fav || !book {
		t.Fatalf("expected entry 1 to carry both marks")
	}
	if fav, book := marks(2); fav || !book {
		t.Fatalf("expected entry 2 to be bookmarked only")
	}
	if fav, book := marks(3); fav || book {
		t.Fatalf("expected entry 3 to be unmarked")
	}
}

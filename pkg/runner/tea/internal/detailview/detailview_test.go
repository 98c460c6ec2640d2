package detailview

import (
	"strings"
	"testing"

	"tableflip.dev/xisnul/pkg/browser"
	"tableflip.dev/xisnul/pkg/dua"
	"tableflip.dev/xisnul/pkg/runner/tea/internal/theme"
)

func TestWrapWidth(t *testing.T) {
	tests := []struct {
		width     int
		size, def float64
		want      int
	}{
		{width: 80, size: 16, def: 16, want: 80},
		{width: 80, size: 32, def: 16, want: 40},
		{width: 80, size: 10, def: 16, want: 80},
		{width: 20, size: 50, def: 26, want: minWrap},
		{width: 0, size: 16, def: 16, want: 0},
	}
	for _, tt := range tests {
		if got := WrapWidth(tt.width, tt.size, tt.def); got != tt.want {
			t.Fatalf("WrapWidth(%d, %v, %v) = %d, want %d", tt.width, tt.size, tt.def, got, tt.want)
		}
	}
}

func state(e *dua.Entry) State {
	limits := browser.LimitsFor(browser.ProfileRegular)
	return State{
		Entry:  e,
		Limits: limits,
		Fonts:  browser.Fonts{Arabic: limits.Arabic.Default, Translation: limits.Translation.Default},
	}
}

func TestRenderOptionalBlocks(t *testing.T) {
	th := theme.Default()
	out := Render(state(&dua.Entry{ID: 1, Title: "Morning Dua", Somali: "subax wanaagsan"}), 60, th)
	if !strings.Contains(out, "MACNAHA:") || !strings.Contains(out, "subax wanaagsan") {
		t.Fatalf("missing translation block: %q", out)
	}
	if strings.Contains(out, "Laga soo qaatay") || strings.Contains(out, "Goobta") {
		t.Fatalf("info shown without source or context: %q", out)
	}

	out = Render(state(&dua.Entry{ID: 2, Title: "Evening", Somali: "galab", Source: "Muslim", Context: "Galabtii"}), 60, th)
	for _, want := range []string{"Laga soo qaatay: Muslim", "Goobta: Galabtii"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestNavOnlyShowsExistingNeighbors(t *testing.T) {
	th := theme.Default()
	s := state(&dua.Entry{ID: 1})
	s.HasNext = true
	out := Nav(s, 40, th)
	if strings.Contains(out, "Hore") || !strings.Contains(out, "Xigta") {
		t.Fatalf("unexpected nav for first entry: %q", out)
	}

	s.HasNext = false
	s.HasPrevious = true
	out = Nav(s, 40, th)
	if !strings.Contains(out, "Hore") || strings.Contains(out, "Xigta") {
		t.Fatalf("unexpected nav for last entry: %q", out)
	}
}

func TestFontBarSizes(t *testing.T) {
	s := state(&dua.Entry{ID: 1})
	s.Fonts.Translation = 17.5
	out := FontBar(s, theme.Default())
	if !strings.Contains(out, "26 / 17.5") {
		t.Fatalf("unexpected font bar %q", out)
	}
}

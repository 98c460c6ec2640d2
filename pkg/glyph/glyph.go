package glyph

// Glyph is a small symbol shown next to an entry.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

// Mark is one of the per-entry toggles.
type Mark int

const (
	Favorite Mark = iota
	Bookmark
)

// DefaultGlyphs returns the on/off symbol pairs, indexed by Mark*2 (+1 when on).
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{Key: "f", Symbol: "♡", Meaning: "not a favorite"},
		{Key: "f", Symbol: "♥", Meaning: "favorite"},
		{Key: "b", Symbol: "☆", Meaning: "not bookmarked"},
		{Key: "b", Symbol: "★", Meaning: "bookmarked"},
	}
}

func (g Glyph) String() string {
	return g.Symbol
}

// Glyph returns the symbol for the mark in the given state.
func (m Mark) Glyph(on bool) Glyph {
	i := int(m) * 2
	if on {
		i++
	}
	return DefaultGlyphs()[i]
}

func (m Mark) String() string {
	if m == Bookmark {
		return "bookmark"
	}
	return "favorite"
}

// Arrows used by the detail view navigation.
const (
	Previous = "‹"
	Next     = "›"
	Search   = "⌕"
	Recent   = "◷"
)

package browser

// Prefs is the part of a session that may outlive it when persistence is
// enabled.
type Prefs struct {
	Favorites []int  `json:"favorites,omitempty"`
	Bookmarks []int  `json:"bookmarks,omitempty"`
	Recent    []int  `json:"recent,omitempty"`
	Fonts     *Fonts `json:"fonts,omitempty"`
}

// Snapshot captures the current toggles, recency list and font sizes.
func (b *Browser) Snapshot() Prefs {
	f := b.fonts
	return Prefs{
		Favorites: b.favorites.IDs(),
		Bookmarks: b.bookmarks.IDs(),
		Recent:    b.recent.IDs(),
		Fonts:     &f,
	}
}

// Restore replaces toggles, recency and fonts with p. Ids that are not in the
// catalog are dropped and fonts are clamped to the active profile.
func (b *Browser) Restore(p Prefs) {
	b.favorites = flagsFrom(b.known(p.Favorites))
	b.bookmarks = flagsFrom(b.known(p.Bookmarks))
	b.recent.reset(b.known(p.Recent))
	if p.Fonts != nil {
		b.fonts = LimitsFor(b.profile).clamp(*p.Fonts)
	}
}

// RestoreFlags replaces only the favorite and bookmark sets.
func (b *Browser) RestoreFlags(p Prefs) {
	b.favorites = flagsFrom(b.known(p.Favorites))
	b.bookmarks = flagsFrom(b.known(p.Bookmarks))
}

func (b *Browser) known(ids []int) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := b.cat.Get(id); ok {
			out = append(out, id)
		}
	}
	return out
}

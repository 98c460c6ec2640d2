// Package browser is the session logic behind the reader: the debounced
// search filter, the selected entry and its neighbors, favorites, bookmarks,
// the recently viewed list and reading font sizes.
//
// A Browser is driven from a single event loop and is not safe for
// concurrent use.
package browser

import (
	"time"

	"go.uber.org/zap"

	"tableflip.dev/xisnul/pkg/catalog"
	"tableflip.dev/xisnul/pkg/debounce"
	"tableflip.dev/xisnul/pkg/dua"
)

// Mode is the view the session is in.
type Mode int

const (
	// Browsing shows the (filtered) list. It is the initial mode.
	Browsing Mode = iota
	// Viewing shows a single selected entry.
	Viewing
)

func (m Mode) String() string {
	if m == Viewing {
		return "viewing"
	}
	return "browsing"
}

// Option configures a Browser.
type Option func(*Browser)

// WithDelay sets the search debounce window.
func WithDelay(d time.Duration) Option {
	return func(b *Browser) { b.debouncer = debounce.New(d) }
}

// WithProfile selects the font limits.
func WithProfile(p Profile) Option {
	return func(b *Browser) { b.profile = p }
}

// WithLogger attaches a logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *Browser) {
		if l != nil {
			b.log = l
		}
	}
}

// Browser holds the ephemeral state of one reading session.
type Browser struct {
	cat *catalog.Catalog
	log *zap.Logger

	debouncer *debounce.Debouncer
	query     string
	visible   []*dua.Entry
	passes    int

	selected int

	favorites Flags
	bookmarks Flags
	recent    Recent

	profile Profile
	fonts   Fonts
}

// New starts a session over cat in Browsing mode with every entry visible.
func New(cat *catalog.Catalog, opts ...Option) *Browser {
	b := &Browser{
		cat:       cat,
		log:       zap.NewNop(),
		debouncer: debounce.New(debounce.DefaultDelay),
		favorites: make(Flags),
		bookmarks: make(Flags),
		profile:   ProfileRegular,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.visible = cat.All()
	b.fonts = LimitsFor(b.profile).defaults()
	return b
}

// Catalog returns the dataset the session browses.
func (b *Browser) Catalog() *catalog.Catalog {
	return b.cat
}

// Search records q as the pending query and schedules a filter pass. The
// returned ticket must be handed back to Settle once the debounce delay has
// elapsed; only the most recent ticket applies.
func (b *Browser) Search(q string) debounce.Ticket {
	b.query = q
	return b.debouncer.Schedule()
}

// Settle runs the filter with the latest query if t is still current.
func (b *Browser) Settle(t debounce.Ticket) bool {
	if !b.debouncer.Fire(t) {
		return false
	}
	b.applyFilter()
	return true
}

// ApplyNow sets the query and filters immediately, dropping any pending
// debounced pass.
func (b *Browser) ApplyNow(q string) {
	b.debouncer.Cancel()
	b.query = q
	b.applyFilter()
}

func (b *Browser) applyFilter() {
	b.visible = b.cat.Filter(b.query)
	b.passes++
	b.log.Debug("filter applied",
		zap.String("query", b.query),
		zap.Int("visible", len(b.visible)))
}

// Delay is the debounce window.
func (b *Browser) Delay() time.Duration {
	return b.debouncer.Delay()
}

func (b *Browser) Query() string {
	return b.query
}

// Visible returns the entries produced by the last filter pass.
func (b *Browser) Visible() []*dua.Entry {
	out := make([]*dua.Entry, len(b.visible))
	copy(out, b.visible)
	return out
}

// FilterPasses counts how many times the filter actually ran.
func (b *Browser) FilterPasses() int {
	return b.passes
}

// Select opens the entry with id and records it as recently viewed. Ids that
// are not in the catalog are ignored.
func (b *Browser) Select(id int) bool {
	if _, ok := b.cat.Get(id); !ok {
		return false
	}
	b.selected = id
	b.recent.Push(id)
	return true
}

// ClearSelection returns to the list.
func (b *Browser) ClearSelection() {
	b.selected = 0
}

// Selected returns the entry being viewed.
func (b *Browser) Selected() (*dua.Entry, bool) {
	if b.selected == 0 {
		return nil, false
	}
	return b.cat.Get(b.selected)
}

func (b *Browser) Mode() Mode {
	if b.selected == 0 {
		return Browsing
	}
	return Viewing
}

// Next selects the entry with the following id in catalog order.
func (b *Browser) Next() bool {
	return b.step(1)
}

// Previous selects the entry with the preceding id in catalog order.
func (b *Browser) Previous() bool {
	return b.step(-1)
}

func (b *Browser) HasNext() bool {
	return b.hasNeighbor(1)
}

func (b *Browser) HasPrevious() bool {
	return b.hasNeighbor(-1)
}

func (b *Browser) hasNeighbor(delta int) bool {
	if b.selected == 0 {
		return false
	}
	_, ok := b.cat.Neighbor(b.selected, delta)
	return ok
}

func (b *Browser) step(delta int) bool {
	if b.selected == 0 {
		return false
	}
	e, ok := b.cat.Neighbor(b.selected, delta)
	if !ok {
		return false
	}
	return b.Select(e.ID)
}

// ToggleFavorite flips the favorite flag for id and returns the new value.
func (b *Browser) ToggleFavorite(id int) bool {
	return b.favorites.Toggle(id)
}

// ToggleBookmark flips the bookmark flag for id and returns the new value.
func (b *Browser) ToggleBookmark(id int) bool {
	return b.bookmarks.Toggle(id)
}

func (b *Browser) IsFavorite(id int) bool {
	return b.favorites.Has(id)
}

func (b *Browser) IsBookmarked(id int) bool {
	return b.bookmarks.Has(id)
}

func (b *Browser) Favorites() []int {
	return b.favorites.IDs()
}

func (b *Browser) Bookmarks() []int {
	return b.bookmarks.IDs()
}

func (b *Browser) FavoriteCount() int {
	return b.favorites.Count()
}

// Recent lists recently viewed ids, most recent first.
func (b *Browser) Recent() []int {
	return b.recent.IDs()
}

func (b *Browser) Fonts() Fonts {
	return b.fonts
}

func (b *Browser) Profile() Profile {
	return b.profile
}

// Limits returns the font limits of the active profile.
func (b *Browser) Limits() FontLimits {
	return LimitsFor(b.profile)
}

// IncreaseFont grows both sizes by their steps, clamped to their maxima.
func (b *Browser) IncreaseFont() {
	b.fonts = LimitsFor(b.profile).step(b.fonts, 1)
}

// DecreaseFont shrinks both sizes by their steps, clamped to their minima.
func (b *Browser) DecreaseFont() {
	b.fonts = LimitsFor(b.profile).step(b.fonts, -1)
}

// ResetFont restores the profile defaults.
func (b *Browser) ResetFont() {
	b.fonts = LimitsFor(b.profile).defaults()
}

// SetProfile switches screen class. Sizes still at the old defaults move to
// the new defaults; adjusted sizes are kept but clamped to the new limits.
func (b *Browser) SetProfile(p Profile) {
	if p == b.profile {
		return
	}
	old := LimitsFor(b.profile).defaults()
	b.profile = p
	limits := LimitsFor(p)
	if b.fonts == old {
		b.fonts = limits.defaults()
		return
	}
	b.fonts = limits.clamp(b.fonts)
}

// Close drops any pending debounced filter pass.
func (b *Browser) Close() {
	b.debouncer.Cancel()
}

package teaui

import (
	"context"
	"testing"

	"tableflip.dev/xisnul/pkg/browser"
	"tableflip.dev/xisnul/pkg/config"
	"tableflip.dev/xisnul/pkg/glyph"
	"tableflip.dev/xisnul/pkg/store"
)

func newStoredModel(t *testing.T) (Model, store.Persistence) {
	t.Helper()
	p, err := store.Open(&config.Config{Path: t.TempDir()}, "", nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	m := newTestModel(Options{})
	m.svc.Persistence = p
	return m, p
}

func TestOutOfOrderSavesKeepLatestState(t *testing.T) {
	ctx := context.Background()
	m, p := newStoredModel(t)

	first := m.toggle(glyph.Favorite, 1)
	second := m.toggle(glyph.Favorite, 1)
	if m.b.IsFavorite(1) {
		t.Fatalf("expected two toggles to leave 1 unmarked")
	}

	// Commands run on their own goroutines, so the later save may land first.
	if msg, ok := second().(prefsSavedMsg); !ok || !msg.written {
		t.Fatalf("expected the latest save to be written, got %#v", msg)
	}
	if msg, ok := first().(prefsSavedMsg); !ok || msg.written {
		t.Fatalf("expected the older save to be dropped, got %#v", msg)
	}

	stored, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(stored.Favorites) != 0 {
		t.Fatalf("expected no stored favorites, got %v", stored.Favorites)
	}

	// The watcher reports our own write; reloading must not change the session.
	if msg := m.loadPrefs(true)(); msg != nil {
		m = update(t, m, msg)
	}
	if m.b.IsFavorite(1) {
		t.Fatalf("own write reload marked 1 as favorite")
	}
}

func TestReloadAppliesExternalChanges(t *testing.T) {
	ctx := context.Background()
	m, p := newStoredModel(t)

	if msg, ok := m.toggle(glyph.Bookmark, 2)().(prefsSavedMsg); !ok || !msg.written {
		t.Fatalf("expected save to be written, got %#v", msg)
	}
	// Another reader marks 3.
	if err := p.Save(ctx, browser.Prefs{Favorites: []int{3}, Bookmarks: []int{2}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	msg := m.loadPrefs(true)()
	if _, ok := msg.(prefsLoadedMsg); !ok {
		t.Fatalf("expected external change to be loaded, got %#v", msg)
	}
	m = update(t, m, msg)
	if !m.b.IsFavorite(3) || !m.b.IsBookmarked(2) {
		t.Fatalf("expected external favorite and own bookmark in session")
	}
}

func TestReloadWaitsForPendingSave(t *testing.T) {
	m, p := newStoredModel(t)
	if err := p.Save(context.Background(), browser.Prefs{Favorites: []int{3}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	pending := m.toggle(glyph.Favorite, 1)
	if msg := m.loadPrefs(true)(); msg != nil {
		t.Fatalf("expected reload to be skipped while a save is pending, got %#v", msg)
	}
	if msg, ok := pending().(prefsSavedMsg); !ok || !msg.written {
		t.Fatalf("expected pending save to be written, got %#v", msg)
	}
	if !m.b.IsFavorite(1) {
		t.Fatalf("expected session favorite to survive")
	}
}

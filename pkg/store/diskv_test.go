package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/xisnul/pkg/browser"
)

func TestLoadMissingReturnsEmptyPrefs(t *testing.T) {
	p, err := Open(testConfig{path: t.TempDir()}, "", nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	prefs, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(browser.Prefs{}, prefs); diff != "" {
		t.Fatalf("prefs (-want +got):\n%s", diff)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	p, err := Open(testConfig{path: base}, "duas.yaml", nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	fonts := browser.Fonts{Arabic: 30, Translation: 19}
	want := browser.Prefs{
		Favorites: []int{1, 4},
		Bookmarks: []int{2},
		Recent:    []int{4, 2, 1},
		Fonts:     &fonts,
	}
	if err := p.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	reopened, err := Open(testConfig{path: base}, "duas.yaml", nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("prefs (-want +got):\n%s", diff)
	}

	bundled, err := Open(testConfig{path: base}, "", nil)
	if err != nil {
		t.Fatalf("open bundled: %v", err)
	}
	if got, _ := bundled.Load(ctx); len(got.Favorites) != 0 {
		t.Fatalf("prefs leaked across datasets: %+v", got)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	p, err := Open(testConfig{path: t.TempDir()}, "", nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := p.Update(ctx, func(prefs *browser.Prefs) error {
		prefs.Favorites = append(prefs.Favorites, 7)
		return nil
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	boom := errors.New("boom")
	if _, err := p.Update(ctx, func(prefs *browser.Prefs) error {
		prefs.Favorites = nil
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	got, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]int{7}, got.Favorites); diff != "" {
		t.Fatalf("favorites (-want +got):\n%s", diff)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(testConfig{}, "", nil); err == nil {
		t.Fatalf("expected error for empty base path")
	}
}

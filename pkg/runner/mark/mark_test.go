package mark

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/xisnul/pkg/app"
	"tableflip.dev/xisnul/pkg/config"
	"tableflip.dev/xisnul/pkg/glyph"
	"tableflip.dev/xisnul/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestMarkToggles(t *testing.T) {
	svc, err := app.Open(&config.Config{Persist: true, Path: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	var buf bytes.Buffer
	m := Mark{Service: svc, Mark: glyph.Bookmark, ID: 3, Out: &buf}
	if err := m.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(buf.String(), "bookmark on") {
		t.Fatalf("unexpected output %q", buf.String())
	}

	buf.Reset()
	if err := m.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(buf.String(), "bookmark off") {
		t.Fatalf("expected second toggle to turn the mark off, got %q", buf.String())
	}
}

func TestMarkWithoutPersistence(t *testing.T) {
	svc, err := app.Open(&config.Config{}, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	m := Mark{Service: svc, Mark: glyph.Favorite, ID: 1, Out: &bytes.Buffer{}}
	if err := m.Do(context.Background()); !errors.Is(err, store.ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

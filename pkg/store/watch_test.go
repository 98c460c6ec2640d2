package store

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"

	"tableflip.dev/xisnul/pkg/browser"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestPersistenceWatchEmitsPrefsChanges(t *testing.T) {
	base := t.TempDir()
	watching, err := Open(testConfig{path: base}, "", nil)
	if err != nil {
		t.Fatalf("open persistence: %v", err)
	}
	writer, err := Open(testConfig{path: base}, "", nil)
	if err != nil {
		t.Fatalf("open writer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := watching.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := writer.Save(ctx, browser.Prefs{Favorites: []int{3}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	deadline := time.After(2 * time.Second)
	select {
	case evt := <-ch:
		if evt.Type != EventPrefsChanged {
			t.Fatalf("expected prefs changed event, got %v", evt.Type)
		}
	case <-deadline:
		t.Fatal("timed out waiting for prefs change event")
	}

	prefs, err := watching.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(prefs.Favorites) != 1 || prefs.Favorites[0] != 3 {
		t.Fatalf("expected favorites [3], got %v", prefs.Favorites)
	}

	cancel()
	for range ch {
	}
}

func TestPersistenceWatchIgnoresOtherDatasets(t *testing.T) {
	base := t.TempDir()
	watching, err := Open(testConfig{path: base}, "", nil)
	if err != nil {
		t.Fatalf("open persistence: %v", err)
	}
	other, err := Open(testConfig{path: base}, "/tmp/other.json", nil)
	if err != nil {
		t.Fatalf("open other: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := watching.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	if err := other.Save(ctx, browser.Prefs{Bookmarks: []int{1}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case evt := <-ch:
		t.Fatalf("unexpected event %v for another dataset", evt.Type)
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	for range ch {
	}
}

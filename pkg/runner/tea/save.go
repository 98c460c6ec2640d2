package teaui

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"tableflip.dev/xisnul/pkg/browser"
	"tableflip.dev/xisnul/pkg/store"
)

// saver orders the reader's writes to the preference store. Commands run on
// their own goroutines, so every snapshot is stamped when it is taken and a
// write older than the last one stored is dropped.
type saver struct {
	issued atomic.Uint64

	mu      sync.Mutex
	written uint64
	last    *browser.Prefs
}

// stamp reserves the sequence number for a snapshot taken now. It is called
// from the update loop.
func (s *saver) stamp() uint64 {
	return s.issued.Add(1)
}

// save writes snap unless a newer snapshot already reached the store. It
// reports whether the write happened.
func (s *saver) save(ctx context.Context, p store.Persistence, seq uint64, snap browser.Prefs) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.written {
		return false, nil
	}
	if err := p.Save(ctx, snap); err != nil {
		// A failed write still settles its sequence number.
		s.written = seq
		return false, err
	}
	s.written = seq
	s.last = &snap
	return true, nil
}

// reload reads the stored prefs and reports whether they should replace the
// session flags. Stored state that is our own last write, or that a pending
// save is about to overwrite, is skipped.
func (s *saver) reload(ctx context.Context, load func(context.Context) (browser.Prefs, error)) (browser.Prefs, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefs, err := load(ctx)
	if err != nil {
		return prefs, false, err
	}
	if s.issued.Load() > s.written {
		return prefs, false, nil
	}
	if s.last != nil && sameFlags(*s.last, prefs) {
		return prefs, false, nil
	}
	return prefs, true, nil
}

func sameFlags(a, b browser.Prefs) bool {
	return slices.Equal(a.Favorites, b.Favorites) && slices.Equal(a.Bookmarks, b.Bookmarks)
}

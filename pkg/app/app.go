package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/xisnul/pkg/browser"
	"tableflip.dev/xisnul/pkg/catalog"
	"tableflip.dev/xisnul/pkg/config"
	"tableflip.dev/xisnul/pkg/dataset"
	"tableflip.dev/xisnul/pkg/dua"
	"tableflip.dev/xisnul/pkg/logging"
	"tableflip.dev/xisnul/pkg/store"
)

// Service provides high-level operations over the catalog and the optional
// preference store so the UI, the CLI and the MCP server share logic.
type Service struct {
	Catalog     *catalog.Catalog
	Persistence store.Persistence
	Log         *zap.Logger
}

var ErrNotFound = errors.New("app: entry not found")

// Open loads the configured dataset, validates it and opens the preference
// store when persistence is enabled. Validation problems are logged unless
// cfg.Strict is set, in which case they abort.
func Open(cfg *config.Config, logger *zap.Logger) (*Service, error) {
	logger = logging.OrNop(logger)
	entries, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return nil, err
	}
	if err := dataset.Validate(entries); err != nil {
		if cfg.Strict {
			return nil, fmt.Errorf("app: invalid dataset: %w", err)
		}
		logger.Warn("dataset has problems; navigation may skip entries",
			zap.String("dataset", cfg.Dataset),
			zap.Error(err))
	}

	s := &Service{
		Catalog: catalog.New(entries),
		Log:     logger,
	}
	if cfg.Persist {
		p, err := store.Open(cfg, cfg.Dataset, logger)
		if err != nil {
			return nil, err
		}
		s.Persistence = p
	}
	logger.Debug("catalog loaded",
		zap.Int("entries", s.Catalog.Len()),
		zap.Bool("persist", cfg.Persist))
	return s, nil
}

// Entries lists the whole catalog in order.
func (s *Service) Entries() []*dua.Entry {
	return s.Catalog.All()
}

// Search applies the browser filter without debouncing.
func (s *Service) Search(query string) []*dua.Entry {
	return s.Catalog.Filter(query)
}

// Entry returns the entry with id.
func (s *Service) Entry(id int) (*dua.Entry, error) {
	e, ok := s.Catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return e, nil
}

// Neighbors returns the entries before and after id in catalog order; either
// may be nil at the ends.
func (s *Service) Neighbors(id int) (prev, next *dua.Entry, err error) {
	if _, err := s.Entry(id); err != nil {
		return nil, nil, err
	}
	prev, _ = s.Catalog.Neighbor(id, -1)
	next, _ = s.Catalog.Neighbor(id, 1)
	return prev, next, nil
}

// Prefs returns the stored prefs, or empty prefs when persistence is off.
func (s *Service) Prefs(ctx context.Context) (browser.Prefs, error) {
	if s.Persistence == nil {
		return browser.Prefs{}, nil
	}
	return s.Persistence.Load(ctx)
}

// ToggleFavorite flips the stored favorite flag for id.
func (s *Service) ToggleFavorite(ctx context.Context, id int) (bool, error) {
	var on bool
	err := s.mutate(ctx, id, func(b *browser.Browser) { on = b.ToggleFavorite(id) })
	return on, err
}

// ToggleBookmark flips the stored bookmark flag for id.
func (s *Service) ToggleBookmark(ctx context.Context, id int) (bool, error) {
	var on bool
	err := s.mutate(ctx, id, func(b *browser.Browser) { on = b.ToggleBookmark(id) })
	return on, err
}

// MarkViewed records id in the stored recently viewed list. It is a no-op
// when persistence is off.
func (s *Service) MarkViewed(ctx context.Context, id int) error {
	if s.Persistence == nil {
		return nil
	}
	return s.mutate(ctx, id, func(b *browser.Browser) { b.Select(id) })
}

// mutate replays fn against a browser restored from the store so stored
// prefs follow exactly the same rules as an interactive session.
func (s *Service) mutate(ctx context.Context, id int, fn func(*browser.Browser)) error {
	if s.Persistence == nil {
		return store.ErrDisabled
	}
	if _, err := s.Entry(id); err != nil {
		return err
	}
	_, err := s.Persistence.Update(ctx, func(p *browser.Prefs) error {
		b := browser.New(s.Catalog)
		b.Restore(*p)
		fonts := p.Fonts
		fn(b)
		*p = b.Snapshot()
		// Fonts depend on the profile of the session that saved them.
		p.Fonts = fonts
		return nil
	})
	return err
}

// Favorites returns the stored favorite entries in id order.
func (s *Service) Favorites(ctx context.Context) ([]*dua.Entry, error) {
	prefs, err := s.Prefs(ctx)
	if err != nil {
		return nil, err
	}
	return s.lookup(prefs.Favorites), nil
}

// Bookmarks returns the stored bookmarked entries in id order.
func (s *Service) Bookmarks(ctx context.Context) ([]*dua.Entry, error) {
	prefs, err := s.Prefs(ctx)
	if err != nil {
		return nil, err
	}
	return s.lookup(prefs.Bookmarks), nil
}

// Recent returns the stored recently viewed entries, most recent first.
func (s *Service) Recent(ctx context.Context) ([]*dua.Entry, error) {
	prefs, err := s.Prefs(ctx)
	if err != nil {
		return nil, err
	}
	return s.lookup(prefs.Recent), nil
}

func (s *Service) lookup(ids []int) []*dua.Entry {
	out := make([]*dua.Entry, 0, len(ids))
	for _, id := range ids {
		if e, ok := s.Catalog.Get(id); ok {
			out = append(out, e)
		}
	}
	return out
}

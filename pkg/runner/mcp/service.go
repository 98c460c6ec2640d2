// Package mcp provides the Model Context Protocol server integration for xisnul.
package mcp

import (
	"context"

	"tableflip.dev/xisnul/pkg/app"
	"tableflip.dev/xisnul/pkg/browser"
	"tableflip.dev/xisnul/pkg/dua"
)

// Service adapts the app service to transport-friendly results.
type Service struct {
	App *app.Service
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Arabic      string `json:"arabic,omitempty"`
	Somali      string `json:"somali"`
	Translation string `json:"translation,omitempty"`
	Source      string `json:"source,omitempty"`
	Context     string `json:"context,omitempty"`
	Category    string `json:"category,omitempty"`
	Favorite    bool   `json:"favorite"`
	Bookmarked  bool   `json:"bookmarked"`
}

// EntryDetail adds the catalog neighbors of an entry.
type EntryDetail struct {
	EntryDTO
	Previous *int `json:"previous,omitempty"`
	Next     *int `json:"next,omitempty"`
}

// ToggleResult reports the state of a mark after toggling it.
type ToggleResult struct {
	ID   int    `json:"id"`
	Mark string `json:"mark"`
	On   bool   `json:"on"`
}

// NewService builds a service wrapper around svc.
func NewService(svc *app.Service) *Service {
	return &Service{App: svc}
}

// ListEntries returns every entry in catalog order.
func (s *Service) ListEntries(ctx context.Context) ([]EntryDTO, error) {
	return s.toDTOs(ctx, s.App.Entries())
}

// SearchEntries filters the catalog and returns at most limit results.
func (s *Service) SearchEntries(ctx context.Context, query string, limit int) ([]EntryDTO, error) {
	results := s.App.Search(query)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return s.toDTOs(ctx, results)
}

// EntryByID returns one entry with its neighbors.
func (s *Service) EntryByID(ctx context.Context, id int) (*EntryDetail, error) {
	e, err := s.App.Entry(id)
	if err != nil {
		return nil, err
	}
	prev, next, err := s.App.Neighbors(id)
	if err != nil {
		return nil, err
	}
	prefs, err := s.prefs(ctx)
	if err != nil {
		return nil, err
	}
	detail := &EntryDetail{EntryDTO: toDTO(e, prefs)}
	if prev != nil {
		detail.Previous = &prev.ID
	}
	if next != nil {
		detail.Next = &next.ID
	}
	if err := s.App.MarkViewed(ctx, id); err != nil {
		return nil, err
	}
	return detail, nil
}

// ToggleFavorite flips the favorite mark of id.
func (s *Service) ToggleFavorite(ctx context.Context, id int) (*ToggleResult, error) {
	on, err := s.App.ToggleFavorite(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{ID: id, Mark: "favorite", On: on}, nil
}

// ToggleBookmark flips the bookmark mark of id.
func (s *Service) ToggleBookmark(ctx context.Context, id int) (*ToggleResult, error) {
	on, err := s.App.ToggleBookmark(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{ID: id, Mark: "bookmark", On: on}, nil
}

// Favorites lists favorite entries in id order.
func (s *Service) Favorites(ctx context.Context) ([]EntryDTO, error) {
	entries, err := s.App.Favorites(ctx)
	if err != nil {
		return nil, err
	}
	return s.toDTOs(ctx, entries)
}

// Recent lists recently viewed entries, most recent first.
func (s *Service) Recent(ctx context.Context) ([]EntryDTO, error) {
	entries, err := s.App.Recent(ctx)
	if err != nil {
		return nil, err
	}
	return s.toDTOs(ctx, entries)
}

func (s *Service) prefs(ctx context.Context) (browser.Prefs, error) {
	return s.App.Prefs(ctx)
}

func (s *Service) toDTOs(ctx context.Context, entries []*dua.Entry) ([]EntryDTO, error) {
	prefs, err := s.prefs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e, prefs))
	}
	return out, nil
}

func toDTO(e *dua.Entry, prefs browser.Prefs) EntryDTO {
	return EntryDTO{
		ID:          e.ID,
		Title:       e.Title,
		Arabic:      e.Arabic,
		Somali:      e.Somali,
		Translation: e.Translation,
		Source:      e.Source,
		Context:     e.Context,
		Category:    e.Category,
		Favorite:    contains(prefs.Favorites, e.ID),
		Bookmarked:  contains(prefs.Bookmarks, e.ID),
	}
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

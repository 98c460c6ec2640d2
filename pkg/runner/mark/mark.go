// Package mark toggles favorites and bookmarks from the command line.
package mark

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/xisnul/pkg/app"
	"tableflip.dev/xisnul/pkg/glyph"
)

type Mark struct {
	Service *app.Service
	Mark    glyph.Mark
	ID      int
	JSON    bool
	Out     io.Writer
}

func (m *Mark) Do(ctx context.Context) error {
	if m.Service == nil {
		return fmt.Errorf("mark: no catalog")
	}
	e, err := m.Service.Entry(m.ID)
	if err != nil {
		return err
	}

	var on bool
	switch m.Mark {
	case glyph.Favorite:
		on, err = m.Service.ToggleFavorite(ctx, m.ID)
	case glyph.Bookmark:
		on, err = m.Service.ToggleBookmark(ctx, m.ID)
	default:
		return fmt.Errorf("mark: unknown mark %d", m.Mark)
	}
	if err != nil {
		return err
	}

	out := m.Out
	if out == nil {
		out = color.Output
	}
	if m.JSON {
		return json.NewEncoder(out).Encode(map[string]any{
			"id":   m.ID,
			"mark": m.Mark.String(),
			"on":   on,
		})
	}

	state := "off"
	if on {
		state = "on"
	}
	_, _ = fmt.Fprintf(out, "%s %s %s\n", m.Mark.Glyph(on), e, color.New(color.Faint).Sprintf("%s %s", m.Mark, state))
	return nil
}

// Package show prints a single entry.
package show

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/xisnul/pkg/app"
	"tableflip.dev/xisnul/pkg/printers"
)

type Show struct {
	Service  *app.Service
	ID       int
	Markdown bool
	JSON     bool
	Width    int
	Out      io.Writer
}

func (s *Show) Do(ctx context.Context) error {
	if s.Service == nil {
		return fmt.Errorf("show: no catalog")
	}
	e, err := s.Service.Entry(s.ID)
	if err != nil {
		return err
	}
	prev, next, err := s.Service.Neighbors(s.ID)
	if err != nil {
		return err
	}
	if err := s.Service.MarkViewed(ctx, s.ID); err != nil {
		return err
	}

	out := s.Out
	if out == nil {
		out = color.Output
	}
	if s.JSON {
		payload := map[string]any{"entry": e}
		if prev != nil {
			payload["previous"] = prev.ID
		}
		if next != nil {
			payload["next"] = next.ID
		}
		return json.NewEncoder(out).Encode(payload)
	}

	prefs, err := s.Service.Prefs(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: out, Width: s.Width, Marks: printers.MarksFrom(prefs)}
	if s.Markdown {
		return pp.Glamour(e)
	}
	pp.NewLine()
	pp.Detail(e, prev, next)
	pp.NewLine()
	return nil
}

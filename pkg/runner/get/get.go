// Package get lists catalog entries on the command line.
package get

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/xisnul/pkg/app"
	"tableflip.dev/xisnul/pkg/dua"
	"tableflip.dev/xisnul/pkg/printers"
)

// Source picks which entries are listed.
type Source int

const (
	All Source = iota
	Search
	Favorites
	Bookmarks
	Recent
)

func (s Source) title() string {
	switch s {
	case Search:
		return "Raadin"
	case Favorites:
		return "Jecel"
	case Bookmarks:
		return "Calaamadeysan"
	case Recent:
		return "Dhawaan"
	default:
		return "Xisnul Muslim"
	}
}

type Get struct {
	Service *app.Service
	Source  Source
	Query   string
	JSON    bool
	Out     io.Writer
}

func (g *Get) Do(ctx context.Context) error {
	if g.Service == nil {
		return fmt.Errorf("get: no catalog")
	}
	entries, err := g.entries(ctx)
	if err != nil {
		return err
	}

	out := g.Out
	if out == nil {
		out = color.Output
	}
	if g.JSON {
		return json.NewEncoder(out).Encode(map[string]any{
			"entries": entries,
			"count":   len(entries),
		})
	}

	prefs, err := g.Service.Prefs(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: out, Marks: printers.MarksFrom(prefs)}
	title := g.Source.title()
	if g.Source == Search {
		title = fmt.Sprintf("%s %q", title, g.Query)
	}
	pp.NewLine()
	pp.TitleWithCount(title, len(entries))
	pp.List(entries...)
	return nil
}

func (g *Get) entries(ctx context.Context) ([]*dua.Entry, error) {
	switch g.Source {
	case Search:
		return g.Service.Search(g.Query), nil
	case Favorites:
		return g.Service.Favorites(ctx)
	case Bookmarks:
		return g.Service.Bookmarks(ctx)
	case Recent:
		return g.Service.Recent(ctx)
	default:
		return g.Service.Entries(), nil
	}
}

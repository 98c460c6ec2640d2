package get

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/xisnul/pkg/app"
	"tableflip.dev/xisnul/pkg/catalog"
	"tableflip.dev/xisnul/pkg/dua"
)

func init() {
	color.NoColor = true
}

func testService() *app.Service {
	return &app.Service{
		Catalog: catalog.New([]*dua.Entry{
			{ID: 1, Title: "Morning Dua", Somali: "subax"},
			{ID: 2, Title: "Evening Dua", Somali: "galab"},
		}),
	}
}

func TestGetSearchText(t *testing.T) {
	var buf bytes.Buffer
	g := Get{Service: testService(), Source: Search, Query: "evening", Out: &buf}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Evening Dua") || strings.Contains(out, "Morning Dua") {
		t.Fatalf("unexpected search output %q", out)
	}
	if !strings.Contains(out, "- 1 Duco") {
		t.Fatalf("expected count in title: %q", out)
	}
}

func TestGetAllJSON(t *testing.T) {
	var buf bytes.Buffer
	g := Get{Service: testService(), JSON: true, Out: &buf}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var got struct {
		Entries []dua.Entry `json:"entries"`
		Count   int         `json:"count"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Count != 2 || got.Entries[1].Title != "Evening Dua" {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestGetFavoritesWithoutPersistence(t *testing.T) {
	var buf bytes.Buffer
	g := Get{Service: testService(), Source: Favorites, Out: &buf}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected empty list, got %q", buf.String())
	}
}

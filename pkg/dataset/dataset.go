// Package dataset loads the supplication collection, either the copy bundled
// into the binary or a JSON/YAML file supplied by the user.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"tableflip.dev/xisnul/pkg/dua"
)

//go:embed xisnul.json
var bundled []byte

// Format is the encoding of a dataset file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor guesses the format from a file extension. Unknown extensions are
// treated as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Bundled decodes the collection compiled into the binary.
func Bundled() ([]*dua.Entry, error) {
	return Decode(bundled, FormatJSON)
}

// Load reads the dataset at path. An empty path selects the bundled dataset.
func Load(path string) ([]*dua.Entry, error) {
	if path == "" {
		return Bundled()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	entries, err := Decode(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	return entries, nil
}

// Decode parses an ordered array of entries.
func Decode(data []byte, format Format) ([]*dua.Entry, error) {
	var entries []*dua.Entry
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&entries); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}
	out := entries[:0]
	for _, e := range entries {
		if e != nil {
			out = append(out, e)
		}
	}
	return out, nil
}

// Validate checks the assumptions navigation relies on: unique ids forming
// 1..N and non-empty titles and Somali text. All problems are reported
// together; nil means the dataset is well formed.
func Validate(entries []*dua.Entry) error {
	var errs []error
	seen := make(map[int]bool, len(entries))
	for i, e := range entries {
		if e.ID <= 0 {
			errs = append(errs, fmt.Errorf("entry %d: id %d is not positive", i, e.ID))
		}
		if seen[e.ID] {
			errs = append(errs, fmt.Errorf("entry %d: duplicate id %d", i, e.ID))
		}
		seen[e.ID] = true
		if strings.TrimSpace(e.Title) == "" {
			errs = append(errs, fmt.Errorf("entry %d (id %d): missing title", i, e.ID))
		}
		if strings.TrimSpace(e.Somali) == "" {
			errs = append(errs, fmt.Errorf("entry %d (id %d): missing somali text", i, e.ID))
		}
	}
	if missing := gaps(seen, len(entries)); len(missing) > 0 {
		errs = append(errs, fmt.Errorf("ids are not contiguous from 1: missing %v", missing))
	}
	return errors.Join(errs...)
}

func gaps(seen map[int]bool, n int) []int {
	var missing []int
	for id := 1; id <= n; id++ {
		if !seen[id] {
			missing = append(missing, id)
		}
	}
	sort.Ints(missing)
	return missing
}

package validate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestBundledDatasetIsValid(t *testing.T) {
	var buf bytes.Buffer
	v := Validate{Out: &buf}
	if err := v.Do(context.Background()); err != nil {
		t.Fatalf("bundled dataset should validate: %v\n%s", err, buf.String())
	}
	if !strings.Contains(buf.String(), "bundled dataset") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestReportsEveryProblem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := `
- id: 1
  title: One
  somali: kow
- id: 1
  title: Duplicate
  somali: labo
- id: 4
  somali: afar
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var buf bytes.Buffer
	v := Validate{Path: path, Out: &buf}
	if err := v.Do(context.Background()); err == nil {
		t.Fatalf("expected validation error")
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected a line per problem, got %q", buf.String())
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "✗ ") {
			t.Fatalf("unexpected line %q", line)
		}
	}
}

// Package validate checks a dataset file for problems.
package validate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/xisnul/pkg/dataset"
)

type Validate struct {
	// Path is the dataset to check; empty checks the bundled one.
	Path string
	Out  io.Writer
}

// Do prints one line per problem and returns an error if any were found.
func (v *Validate) Do(_ context.Context) error {
	out := v.Out
	if out == nil {
		out = color.Output
	}
	name := v.Path
	if name == "" {
		name = "bundled dataset"
	}

	entries, err := dataset.Load(v.Path)
	if err != nil {
		return err
	}
	if err := dataset.Validate(entries); err != nil {
		bad := color.New(color.FgRed)
		for _, line := range problems(err) {
			_, _ = bad.Fprintf(out, "✗ %s\n", line)
		}
		return fmt.Errorf("validate: %s has problems", name)
	}

	_, _ = color.New(color.FgGreen).Fprintf(out, "✓ %s: %d entries\n", name, len(entries))
	return nil
}

func problems(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return strings.Split(err.Error(), "\n")
}

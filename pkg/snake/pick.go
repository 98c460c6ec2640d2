// Package snake prompts for arguments the user left out.
package snake

import (
	"errors"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/xisnul/pkg/dua"
)

// PickEntry asks the user to choose one of entries and returns its id.
func PickEntry(cmd *cobra.Command, label string, entries []*dua.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, errors.New("snake: nothing to choose from")
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .ID | bold }} {{ .Title | green }}",
		Inactive: "   {{ .ID }} {{ .Title | cyan }}",
		Selected: "{{ .ID | bold }} {{ .Title }}",
		Details: `
--------- {{ .Category }} ----------
{{ .Somali }}
`,
	}

	prompt := promptui.Select{
		HideHelp:          true,
		Label:             label,
		Items:             entries,
		Templates:         templates,
		Size:              10,
		Searcher:          Searcher(entries),
		StartInSearchMode: true,
		Stdin:             io.NopCloser(cmd.InOrStdin()),
		Stdout:            nopCloser{cmd.OutOrStdout()},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return entries[i].ID, nil
}

// Searcher matches with the same rule as the reader's search box.
func Searcher(entries []*dua.Entry) func(input string, index int) bool {
	return func(input string, index int) bool {
		return entries[index].Matches(strings.ToLower(input))
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

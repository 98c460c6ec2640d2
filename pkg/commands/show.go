package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/xisnul/pkg/app"
	"tableflip.dev/xisnul/pkg/commands/options"
	"tableflip.dev/xisnul/pkg/runner/show"
	"tableflip.dev/xisnul/pkg/snake"
)

func addShow(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}
	var (
		markdown bool
		width    int
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "print one supplication with its Arabic text and meaning",
		Example: `
xisnul show 3
xisnul show 3 --markdown
xisnul show -i
`,
		Args:              options.ParseIDArg(io, i),
		ValidArgsFunction: idCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.Service()
			if err != nil {
				return output.HandleError(err)
			}
			id, err := resolveID(cmd, svc, io)
			if err != nil {
				return output.HandleError(err)
			}
			s := show.Show{
				Service:  svc,
				ID:       id,
				Markdown: markdown,
				JSON:     output.JSON,
				Width:    width,
				Out:      cmd.OutOrStdout(),
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render as styled markdown.")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap text at this width.")
	options.InteractiveArgs(cmd, i)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

// resolveID returns the id argument, or asks for one when none was given.
func resolveID(cmd *cobra.Command, svc *app.Service, io *options.IDOptions) (int, error) {
	if io.ID > 0 {
		return io.ID, nil
	}
	return snake.PickEntry(cmd, "Duco", svc.Entries())
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/xisnul/pkg/commands/options"
	"tableflip.dev/xisnul/pkg/glyph"
	"tableflip.dev/xisnul/pkg/runner/mark"
)

func addMarks(topLevel *cobra.Command) {
	for _, m := range []glyph.Mark{glyph.Favorite, glyph.Bookmark} {
		m := m
		io := &options.IDOptions{}
		i := &options.InteractiveOptions{}
		cmd := &cobra.Command{
			Use:               m.String() + " <id>",
			Short:             fmt.Sprintf("toggle the %s mark of a supplication (needs --persist)", m),
			Example:           fmt.Sprintf("\nxisnul %s 3 --persist\n", m),
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
				r := mark.Mark{
					Service: svc,
					Mark:    m,
					ID:      id,
					JSON:    output.JSON,
					Out:     cmd.OutOrStdout(),
				}
				return output.HandleError(r.Do(cmd.Context()))
			},
		}
		options.InteractiveArgs(cmd, i)
		options.AddOutputArg(cmd, output)
		topLevel.AddCommand(cmd)
	}
}

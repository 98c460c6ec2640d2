package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/xisnul/pkg/commands/options"
	"tableflip.dev/xisnul/pkg/runner/get"
)

func addList(topLevel *cobra.Command) {
	for _, l := range []struct {
		use     string
		short   string
		example string
		source  get.Source
	}{
		{"list", "list every supplication", "xisnul list\nxisnul list --json", get.All},
		{"favorites", "list favorite supplications", "xisnul favorites --persist", get.Favorites},
		{"bookmarks", "list bookmarked supplications", "xisnul bookmarks --persist", get.Bookmarks},
		{"recent", "list recently viewed supplications, most recent first", "xisnul recent --persist", get.Recent},
	} {
		source := l.source
		cmd := &cobra.Command{
			Use:     l.use,
			Short:   l.short,
			Example: "\n" + l.example + "\n",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := root.Service()
				if err != nil {
					return output.HandleError(err)
				}
				g := get.Get{
					Service: svc,
					Source:  source,
					JSON:    output.JSON,
					Out:     cmd.OutOrStdout(),
				}
				return output.HandleError(g.Do(cmd.Context()))
			},
		}
		options.AddOutputArg(cmd, output)
		topLevel.AddCommand(cmd)
	}
}

func addSearch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "find supplications whose title, Somali or Arabic text contains the text",
		Example: `
xisnul search subax
xisnul search "safar" --json
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.Service()
			if err != nil {
				return output.HandleError(err)
			}
			g := get.Get{
				Service: svc,
				Source:  get.Search,
				Query:   strings.Join(args, " "),
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(g.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

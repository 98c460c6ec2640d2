package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/xisnul/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
	root   = &options.RootOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "xisnul",
		Short: base.Wrap80("Read, search and bookmark the Xisnul Muslim supplications on the command line."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The reader owns the terminal; only log when a file is configured.
			return root.Setup(cmd.Name() == "ui")
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			root.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddRootArgs(cmd)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addList(topLevel)
	addSearch(topLevel)
	addShow(topLevel)
	addMarks(topLevel)
	addValidate(topLevel)
	addInfo(topLevel)
	addKey(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/xisnul/pkg/runner/validate"
)

func addValidate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "check a dataset for duplicate or missing ids and empty fields",
		Example: `
xisnul validate
xisnul validate ./duas.yaml
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			path := root.Config.Dataset
			if len(args) == 1 {
				path = args[0]
			}
			v := validate.Validate{Path: path, Out: cmd.OutOrStdout()}
			return v.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/xisnul/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the dataset and where preferences are stored.",
		Example: `
xisnul info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := root.Service()
			if err != nil {
				return err
			}
			s := info.Info{
				Config:  root.Config,
				Service: svc,
				Out:     cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

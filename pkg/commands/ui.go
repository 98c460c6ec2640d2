package commands

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	teaui "tableflip.dev/xisnul/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	var profile string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based reader",
		Example: `
xisnul ui
xisnul ui --profile small --persist
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			fd := os.Stdout.Fd()
			if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
				return errors.New("ui needs an interactive terminal; try `xisnul list` instead")
			}
			if !cmd.Flags().Changed("profile") {
				profile = root.Config.Profile
			}
			p, err := teaui.ProfileOption(profile)
			if err != nil {
				return err
			}
			svc, err := root.Service()
			if err != nil {
				return err
			}
			return teaui.Run(cmd.Context(), svc, teaui.Options{
				Profile:  p,
				Debounce: root.Config.Debounce,
				Splash:   root.Config.Splash,
				Logger:   root.Logger,
			})
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "auto", "Font profile: auto, small or regular.")

	topLevel.AddCommand(cmd)
}

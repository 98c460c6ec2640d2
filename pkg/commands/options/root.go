package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"tableflip.dev/xisnul/pkg/app"
	"tableflip.dev/xisnul/pkg/config"
	"tableflip.dev/xisnul/pkg/logging"
)

// RootOptions carries the resolved configuration and logger to subcommands.
type RootOptions struct {
	Config *config.Config
	Logger *zap.Logger
}

// AddRootArgs registers the global flags and binds them to viper so they
// override the config file and environment.
func AddRootArgs(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Enable debug logging.")
	flags.String("dataset", "", "JSON or YAML dataset to browse instead of the bundled one.")
	flags.Bool("persist", false, "Keep favorites, bookmarks, recent and font sizes between runs.")
	flags.Bool("strict", false, "Fail on dataset validation problems.")
	flags.String("log-file", "", "Write logs to this file.")

	for key, flag := range map[string]string{
		"verbose":  "verbose",
		"dataset":  "dataset",
		"persist":  "persist",
		"strict":   "strict",
		"log_file": "log-file",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

// Setup loads the configuration and builds the logger. Quiet discards logs
// unless a log file is configured.
func (o *RootOptions) Setup(quiet bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{
		Verbose: cfg.Verbose,
		File:    cfg.LogFile,
		Quiet:   quiet,
	})
	if err != nil {
		return err
	}
	o.Config = cfg
	o.Logger = logger
	return nil
}

// Service opens the catalog and, when enabled, the preference store.
func (o *RootOptions) Service() (*app.Service, error) {
	return app.Open(o.Config, o.Logger)
}

// Sync flushes buffered log entries.
func (o *RootOptions) Sync() {
	if o.Logger != nil {
		_ = o.Logger.Sync()
	}
}

// Package info reports where configuration, data and preferences come from.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	"tableflip.dev/xisnul/pkg/app"
	"tableflip.dev/xisnul/pkg/config"
)

type Info struct {
	Config  *config.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.Config == nil {
		var err error
		n.Config, err = config.Load()
		if err != nil {
			return err
		}
	}

	if override := os.Getenv("XISNUL_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "XISNUL_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "XISNUL_CONFIG_PATH env var not set")
	}
	if used := viper.ConfigFileUsed(); used != "" {
		_, _ = fmt.Fprintln(out, "Config file: ", used)
	}

	dataset := n.Config.Dataset
	if dataset == "" {
		dataset = "(bundled)"
	}
	_, _ = fmt.Fprintln(out, "Dataset: ", dataset)
	if n.Service != nil {
		_, _ = fmt.Fprintf(out, "Entries: %d\n", n.Service.Catalog.Len())
	}

	if !n.Config.Persist {
		_, _ = fmt.Fprintln(out, "Persistence: off")
		return nil
	}
	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	if n.Service == nil {
		return nil
	}
	prefs, err := n.Service.Prefs(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Favorites: %d, Bookmarks: %d, Recent: %d\n",
		len(prefs.Favorites), len(prefs.Bookmarks), len(prefs.Recent))
	return nil
}

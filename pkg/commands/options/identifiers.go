package options

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// IDOptions holds the entry id given as the first argument.
type IDOptions struct {
	ID int
}

// ParseIDArg is a cobra.PositionalArgs that reads a single entry id. The id
// may be omitted when i asks for an interactive pick.
func ParseIDArg(o *IDOptions, i *InteractiveOptions) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if i != nil && i.Interactive && len(args) == 0 {
			return nil
		}
		if len(args) != 1 {
			return fmt.Errorf("expected exactly one entry id, got %d arguments", len(args))
		}
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid entry id %q", args[0])
		}
		o.ID = id
		return nil
	}
}

package cli

import (
	"fmt"

	"github.com/mesh-intelligence/larder/pkg/larder"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the larder version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "larder v%s\nmodule: %s\n", larder.Version, larder.ModulePath)
			return nil
		},
	}
}

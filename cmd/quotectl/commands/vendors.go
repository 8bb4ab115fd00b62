package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVendorsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "vendors",
		Short: "List vendor formats in detection order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range root.app.Extraction.Vendors() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

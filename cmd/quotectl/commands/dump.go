package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newDumpCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the filtered text of every page",
		Long: `Print the filtered text of every page. The configured split page
(QUOTEPARSE_LEGACY_SPLIT_PAGE) is printed as its left and right halves.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			dumps, err := root.app.Extraction.DumpPages(cmd.Context(), data)
			if err != nil {
				return fmt.Errorf("dump %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(dumps)
			}
			for _, d := range dumps {
				root.ui.Heading(out, "Page %d (%s)", d.Page, d.Type)
				fmt.Fprintln(out, d.Content)
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the dump as JSON")
	return cmd
}

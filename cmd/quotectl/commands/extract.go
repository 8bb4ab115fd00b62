package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"quoteparse/internal/domain"
	"quoteparse/internal/quoteexport"
	"quoteparse/internal/service"
)

type extractOptions struct {
	start  string
	end    string
	format string
	out    string
}

func newExtractCmd(root *rootOptions) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract FILE",
		Short: "Extract line items from a quote PDF",
		Long: `Extract line items from a quote PDF. The vendor layout is detected from
the first page. Passing --start or --end switches to manual extraction of
the text between the markers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "", "start marker for manual extraction (included)")
	cmd.Flags().StringVar(&opts.end, "end", "", "end marker for manual extraction (excluded)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "output format: json, csv or xlsx")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default stdout; required for xlsx)")
	return cmd
}

func runExtract(cmd *cobra.Command, root *rootOptions, opts *extractOptions, path string) error {
	if opts.format != "json" {
		if _, ok := quoteexport.ParseFormat(opts.format); !ok {
			return fmt.Errorf("unknown format %q: use json, csv or xlsx", opts.format)
		}
	}
	if opts.format == string(domain.ExportFormatXLSX) && opts.out == "" {
		return fmt.Errorf("xlsx output needs --out")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	ctx := cmd.Context()
	svc := root.app.Extraction
	var result *domain.ExtractionResult
	if opts.start != "" || opts.end != "" {
		result, err = svc.ManualExtract(ctx, data, opts.start, opts.end)
	} else {
		result, err = svc.Process(ctx, service.ProcessInput{FileName: path, Data: data})
	}
	if err != nil {
		return fmt.Errorf("extract %s: %w", path, err)
	}

	if err := writeResult(cmd.OutOrStdout(), opts, result); err != nil {
		return err
	}

	if result.Count == 0 {
		root.ui.Warning("%s: no line items found (vendor %s)", path, result.Vendor)
	} else {
		root.ui.Success("%s: %d line items (vendor %s)", path, result.Count, result.Vendor)
	}
	return nil
}

func writeResult(stdout io.Writer, opts *extractOptions, result *domain.ExtractionResult) (err error) {
	out := stdout
	if opts.out != "" {
		f, cerr := os.Create(opts.out)
		if cerr != nil {
			return fmt.Errorf("create %s: %w", opts.out, cerr)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}

	switch opts.format {
	case string(domain.ExportFormatCSV):
		return quoteexport.WriteCSV(out, result)
	case string(domain.ExportFormatXLSX):
		buf, err := quoteexport.WriteXLSX(result)
		if err != nil {
			return err
		}
		_, err = buf.WriteTo(out)
		return err
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
}

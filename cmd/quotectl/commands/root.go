// Package commands implements the quotectl command tree.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"quoteparse/internal/app"
	"quoteparse/internal/config"
	"quoteparse/internal/logging"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	envFile  string
	logLevel string
	noColor  bool
	archive  bool

	app *app.App
	ui  *UI
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "quotectl",
		Short: "Extract line items from vendor quote PDFs",
		Long: `quotectl runs the quote extraction pipeline on local PDF files.
It detects the vendor layout, extracts line items and writes them as JSON,
CSV or XLSX. Configuration is read from QUOTEPARSE_* environment variables
and an optional .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolVar(&opts.archive, "archive", false, "archive source documents to S3 when a bucket is configured")

	cmd.AddCommand(newExtractCmd(opts), newDumpCmd(opts), newVendorsCmd(opts))
	return cmd
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(o.envFile); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.Log.Level = o.logLevel
	cfg.Log.Format = "console"
	logging.Setup(cfg.Log, "quotectl", cmd.ErrOrStderr())

	o.app, err = app.New(cfg, app.Options{DisableArchive: !o.archive})
	if err != nil {
		return err
	}
	o.ui = NewUI(cmd.ErrOrStderr(), o.noColor)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

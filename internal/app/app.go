// Package app wires configuration into the extraction service shared by the
// HTTP server and the CLI.
package app

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"quoteparse/internal/config"
	"quoteparse/internal/document"
	"quoteparse/internal/noise"
	"quoteparse/internal/pagedump"
	"quoteparse/internal/parser"
	"quoteparse/internal/port"
	"quoteparse/internal/service"
	s3storage "quoteparse/internal/storage/s3"
)

// App holds the wired components of one process.
type App struct {
	Config     *config.Config
	Loader     port.DocumentLoader
	Registry   *parser.Registry
	Storage    port.ObjectStorage
	Extraction service.ExtractionService
}

// Options adjust wiring for a particular entry point.
type Options struct {
	// DisableArchive skips the S3 client even when a bucket is configured.
	DisableArchive bool
	// Backends overrides the document loader backends.
	Backends document.Backends
}

// New builds every component from cfg.
func New(cfg *config.Config, opts Options) (*App, error) {
	backends := opts.Backends
	if backends == nil {
		backends = document.DefaultBackends()
	}
	loader, err := document.NewLoader(cfg.Document, backends)
	if err != nil {
		return nil, fmt.Errorf("initializing document loader: %w", err)
	}

	filter := noise.New(cfg.Noise.Phrases)
	registry := parser.NewRegistry(parser.DefaultParsers(filter)...)
	dumper := pagedump.New(cfg.Legacy.IgnorePhrases, cfg.Legacy.SplitPage)

	var storage port.ObjectStorage
	if cfg.S3.ArchiveEnabled() && !opts.DisableArchive {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("initializing S3 client: %w", err)
		}
		log.Info().Str("bucket", cfg.S3.Bucket).Str("prefix", cfg.S3.Prefix).Msg("app.New: upload archive enabled")
	}

	log.Info().
		Str("loader", loader.Name()).
		Strs("vendors", registry.Names()).
		Msg("app.New: extraction pipeline ready")

	return &App{
		Config:     cfg,
		Loader:     loader,
		Registry:   registry,
		Storage:    storage,
		Extraction: service.NewExtractionService(loader, registry, dumper, filter, storage, &cfg.Upload, &cfg.S3),
	}, nil
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"quoteparse/internal/config"
	"quoteparse/internal/domain"
	"quoteparse/internal/noise"
	"quoteparse/internal/pagedump"
	"quoteparse/internal/parser"
	"quoteparse/internal/port"
)

// ProcessInput is the DTO for one extraction request.
type ProcessInput struct {
	FileName    string
	Data        []byte
	StartMarker string
	EndMarker   string
}

// Manual reports whether the request carries both markers.
func (in ProcessInput) Manual() bool {
	return in.StartMarker != "" && in.EndMarker != ""
}

// ExtractionService defines the quote extraction contract.
type ExtractionService interface {
	Process(ctx context.Context, input ProcessInput) (*domain.ExtractionResult, error)
	DetectAndExtract(ctx context.Context, data []byte) (*domain.ExtractionResult, error)
	ManualExtract(ctx context.Context, data []byte, startMarker, endMarker string) (*domain.ExtractionResult, error)
	DumpPages(ctx context.Context, data []byte) ([]domain.PageDump, error)
	Vendors() []string
}

type extractionService struct {
	loader    port.DocumentLoader
	registry  *parser.Registry
	dumper    *pagedump.Dumper
	filter    *noise.Filter
	storage   port.ObjectStorage
	uploadCfg *config.UploadConfig
	s3Cfg     *config.S3Config
}

// NewExtractionService creates a new ExtractionService implementation.
// storage may be nil, which disables archiving of uploads.
func NewExtractionService(
	loader port.DocumentLoader,
	registry *parser.Registry,
	dumper *pagedump.Dumper,
	filter *noise.Filter,
	storage port.ObjectStorage,
	uploadCfg *config.UploadConfig,
	s3Cfg *config.S3Config,
) ExtractionService {
	if filter == nil {
		filter = noise.Default
	}
	return &extractionService{
		loader:    loader,
		registry:  registry,
		dumper:    dumper,
		filter:    filter,
		storage:   storage,
		uploadCfg: uploadCfg,
		s3Cfg:     s3Cfg,
	}
}

func (s *extractionService) Process(ctx context.Context, input ProcessInput) (*domain.ExtractionResult, error) {
	if err := s.validate(input.Data); err != nil {
		return nil, err
	}
	s.archive(ctx, input.FileName, input.Data)

	pages, err := s.load(ctx, input.Data)
	if err != nil {
		return nil, err
	}

	var p port.VendorParser
	if input.Manual() {
		p = parser.NewManualParser(input.StartMarker, input.EndMarker, s.filter)
	} else {
		p, err = s.registry.Select(pages[0].Text)
		if err != nil {
			log.Info().Str("file", input.FileName).Msg("extractionService.Process: no vendor format matched")
			return nil, err
		}
	}

	result := domain.NewExtractionResult(p.Name(), p.Extract(pages))
	log.Info().
		Str("file", input.FileName).
		Str("vendor", result.Vendor).
		Int("pages", len(pages)).
		Int("items", result.Count).
		Msg("extractionService.Process: extraction complete")
	return result, nil
}

func (s *extractionService) DetectAndExtract(ctx context.Context, data []byte) (*domain.ExtractionResult, error) {
	return s.Process(ctx, ProcessInput{Data: data})
}

// ManualExtract always uses the marker parser. Empty markers fall back to
// the start or end of the document.
func (s *extractionService) ManualExtract(ctx context.Context, data []byte, startMarker, endMarker string) (*domain.ExtractionResult, error) {
	if err := s.validate(data); err != nil {
		return nil, err
	}
	pages, err := s.load(ctx, data)
	if err != nil {
		return nil, err
	}
	p := parser.NewManualParser(startMarker, endMarker, s.filter)
	return domain.NewExtractionResult(p.Name(), p.Extract(pages)), nil
}

func (s *extractionService) DumpPages(ctx context.Context, data []byte) ([]domain.PageDump, error) {
	if err := s.validate(data); err != nil {
		return nil, err
	}
	pages, err := s.load(ctx, data)
	if err != nil {
		return nil, err
	}
	return s.dumper.Dump(pages), nil
}

func (s *extractionService) Vendors() []string {
	return s.registry.Names()
}

func (s *extractionService) validate(data []byte) error {
	if len(data) == 0 {
		return domain.ErrEmptyDocument
	}
	if s.uploadCfg != nil && s.uploadCfg.MaxFileSizeMB > 0 && int64(len(data)) > s.uploadCfg.MaxBytes() {
		return domain.ErrFileTooLarge
	}
	if http.DetectContentType(data) != domain.ContentTypePDF {
		return domain.ErrUnsupportedFileType
	}
	return nil
}

// load materializes pages and rejects documents without any.
func (s *extractionService) load(ctx context.Context, data []byte) ([]domain.Page, error) {
	pages, err := s.loader.Load(ctx, data)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDocument) {
			log.Warn().Err(err).Str("loader", s.loader.Name()).Msg("extractionService.load: document rejected")
			return nil, err
		}
		return nil, fmt.Errorf("loading document: %w", err)
	}
	if len(pages) == 0 {
		return nil, domain.ErrEmptyDocument
	}
	return pages, nil
}

// archive stores the raw upload for audit. Failures are logged only.
func (s *extractionService) archive(ctx context.Context, fileName string, data []byte) {
	if s.storage == nil || s.s3Cfg == nil || !s.s3Cfg.ArchiveEnabled() {
		return
	}

	key := ArchiveKey(s.s3Cfg.Prefix, uuid.New(), fileName, time.Now().UTC())
	out, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3Cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: domain.ContentTypePDF,
		Size:        int64(len(data)),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("extractionService.archive: upload failed")
		return
	}
	log.Debug().Str("key", key).Str("location", out.Location).Msg("extractionService.archive: upload archived")
}

// ArchiveKey builds <prefix>/<yyyy>/<mm>/<dd>/<id>/<filename>.
func ArchiveKey(prefix string, id uuid.UUID, fileName string, at time.Time) string {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "." || name == "/" || strings.TrimSpace(name) == "" {
		name = "quote.pdf"
	}
	return path.Join(strings.Trim(prefix, "/"), at.Format("2006/01/02"), id.String(), name)
}

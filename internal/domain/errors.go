package domain

import "errors"

var (
	ErrEmptyDocument       = errors.New("document has no pages")
	ErrNoMatchingVendor    = errors.New("no registered vendor format matches this document")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrInvalidDocument     = errors.New("document could not be read")
)

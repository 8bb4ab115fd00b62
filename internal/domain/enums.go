package domain

// ContentTypePDF is the only upload content type the extraction pipeline accepts.
const ContentTypePDF = "application/pdf"

// VendorManual labels results produced from caller-supplied markers.
const VendorManual = "manual"

// PageDumpType describes which part of a page a legacy dump entry covers.
type PageDumpType string

const (
	PageDumpFull  PageDumpType = "Full Page"
	PageDumpLeft  PageDumpType = "As Found (Left)"
	PageDumpRight PageDumpType = "As Left (Right)"
)

// ExportFormat is a downloadable rendering of an extraction result.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// ExportContentTypes maps export formats to their MIME content types.
var ExportContentTypes = map[ExportFormat]string{
	ExportFormatCSV:  "text/csv; charset=utf-8",
	ExportFormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

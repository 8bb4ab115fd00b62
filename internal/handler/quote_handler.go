package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"quoteparse/internal/domain"
	"quoteparse/internal/quoteexport"
	"quoteparse/internal/service"
)

// QuoteHandler handles line-item extraction endpoints.
type QuoteHandler struct {
	extractionService service.ExtractionService
	maxUploadBytes    int64
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(extractionService service.ExtractionService, maxUploadBytes int64) *QuoteHandler {
	return &QuoteHandler{extractionService: extractionService, maxUploadBytes: maxUploadBytes}
}

// Extract handles POST /api/v1/quotes/extract and POST /extract-items
// @Summary Extract quote line items
// @Description Detect the vendor layout of an uploaded quote PDF and extract its line items. Supplying both markers forces manual extraction.
// @Tags quotes
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Quote PDF"
// @Param start_marker formData string false "Text where the line-item section starts"
// @Param end_marker formData string false "Text where the line-item section ends"
// @Success 200 {object} Response{data=domain.ExtractionResult} "Extracted line items"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 422 {object} ErrorResponseBody "Empty document, unreadable document or unknown vendor"
// @Router /quotes/extract [post]
func (h *QuoteHandler) Extract(c *gin.Context) {
	result, _, ok := h.process(c)
	if !ok {
		return
	}
	RespondOK(c, result)
}

// Export handles POST /api/v1/quotes/export
// @Summary Export quote line items
// @Description Extract line items and return them as a CSV or XLSX download.
// @Tags quotes
// @Accept multipart/form-data
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv (default) or xlsx"
// @Param file formData file true "Quote PDF"
// @Param start_marker formData string false "Text where the line-item section starts"
// @Param end_marker formData string false "Text where the line-item section ends"
// @Success 200 {file} file "Line items"
// @Failure 400 {object} ErrorResponseBody "Missing file, unsupported type or invalid format"
// @Failure 422 {object} ErrorResponseBody "Empty document, unreadable document or unknown vendor"
// @Router /quotes/export [post]
func (h *QuoteHandler) Export(c *gin.Context) {
	format, ok := quoteexport.ParseFormat(c.DefaultQuery("format", string(domain.ExportFormatCSV)))
	if !ok {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
		return
	}

	result, fileName, ok := h.process(c)
	if !ok {
		return
	}

	var body []byte
	switch format {
	case domain.ExportFormatXLSX:
		buf, err := quoteexport.WriteXLSX(result)
		if err != nil {
			HandleError(c, err)
			return
		}
		body = buf.Bytes()
	default:
		var buf bytes.Buffer
		if err := quoteexport.WriteCSV(&buf, result); err != nil {
			HandleError(c, err)
			return
		}
		body = buf.Bytes()
	}

	filename := quoteexport.BuildFilename(fileName, format, time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, domain.ExportContentTypes[format], body)
}

// Vendors handles GET /api/v1/vendors
// @Summary List vendor formats
// @Description Registered vendor formats in detection order.
// @Tags quotes
// @Produce json
// @Success 200 {object} Response{data=[]string} "Vendor names"
// @Router /vendors [get]
func (h *QuoteHandler) Vendors(c *gin.Context) {
	RespondOK(c, h.extractionService.Vendors())
}

// process runs extraction on the uploaded file. Returns false if an error
// response has already been written.
func (h *QuoteHandler) process(c *gin.Context) (*domain.ExtractionResult, string, bool) {
	upload, ok := readUpload(c, h.maxUploadBytes)
	if !ok {
		return nil, "", false
	}

	result, err := h.extractionService.Process(c.Request.Context(), service.ProcessInput{
		FileName:    upload.Name,
		Data:        upload.Data,
		StartMarker: c.PostForm("start_marker"),
		EndMarker:   c.PostForm("end_marker"),
	})
	if err != nil {
		log.Debug().Err(err).Str("file", upload.Name).Msg("handler.QuoteHandler: extraction failed")
		HandleError(c, err)
		return nil, "", false
	}
	return result, upload.Name, true
}

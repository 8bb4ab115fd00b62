package handler

import (
	"github.com/gin-gonic/gin"

	"quoteparse/internal/service"
)

// PageHandler serves the whole-page text dump.
type PageHandler struct {
	extractionService service.ExtractionService
	maxUploadBytes    int64
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(extractionService service.ExtractionService, maxUploadBytes int64) *PageHandler {
	return &PageHandler{extractionService: extractionService, maxUploadBytes: maxUploadBytes}
}

// Dump handles POST /api/v1/pages/dump and POST /upload
// @Summary Dump page text
// @Description Return filtered text for every page. The configured split page is returned as its left and right halves.
// @Tags pages
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF document"
// @Success 200 {object} Response{data=[]domain.PageDump} "Page dump"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 422 {object} ErrorResponseBody "Empty or unreadable document"
// @Router /pages/dump [post]
func (h *PageHandler) Dump(c *gin.Context) {
	upload, ok := readUpload(c, h.maxUploadBytes)
	if !ok {
		return
	}

	dumps, err := h.extractionService.DumpPages(c.Request.Context(), upload.Data)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, dumps)
}

package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"quoteparse/internal/domain"
	"quoteparse/internal/handler"
	"quoteparse/mocks"
)

func TestPageHandler_Dump_Success(t *testing.T) {
	svc := new(mocks.MockExtractionService)
	h := handler.NewPageHandler(svc, 1<<20)

	svc.On("DumpPages", mock.Anything, pdfBytes).Return([]domain.PageDump{
		{Page: 1, Type: domain.PageDumpFull, Content: "Inspection"},
		{Page: 3, Type: domain.PageDumpLeft, Content: "worn"},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/upload", "report.pdf", pdfBytes, nil)

	h.Dump(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[
		{"page":1,"type":"Full Page","content":"Inspection"},
		{"page":3,"type":"As Found (Left)","content":"worn"}
	]}`, w.Body.String())
}

func TestPageHandler_Dump_Error(t *testing.T) {
	svc := new(mocks.MockExtractionService)
	h := handler.NewPageHandler(svc, 1<<20)
	svc.On("DumpPages", mock.Anything, mock.Anything).Return(nil, domain.ErrEmptyDocument)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/api/v1/pages/dump", "report.pdf", pdfBytes, nil)

	h.Dump(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "EMPTY_DOCUMENT", decode(t, w).Error.Code)
}

func TestPageHandler_Dump_MissingFile(t *testing.T) {
	svc := new(mocks.MockExtractionService)
	h := handler.NewPageHandler(svc, 1<<20)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/upload", "", nil, nil)

	h.Dump(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

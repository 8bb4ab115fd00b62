package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// uploadedFile is the raw content of the multipart "file" field.
type uploadedFile struct {
	Name string
	Data []byte
}

// readUpload reads the "file" form field, at most maxBytes+1 bytes so the
// service can still reject oversized uploads. Returns false if an error
// response has already been written.
func readUpload(c *gin.Context, maxBytes int64) (*uploadedFile, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return nil, false
	}
	defer func() { _ = file.Close() }()

	var r io.Reader = file
	if maxBytes > 0 {
		r = io.LimitReader(file, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file could not be read")
		return nil, false
	}
	return &uploadedFile{Name: header.Filename, Data: data}, true
}

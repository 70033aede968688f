package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/photovault/internal/pkg/response"
	"github.com/avolkov/photovault/internal/service"
)

type PhotoHandler struct {
	photos *service.PhotoService
}

func NewPhotoHandler(photos *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photos: photos}
}

func (h *PhotoHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_file", "file is required")
		return
	}
	opened, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_file", "failed to open file")
		return
	}
	defer opened.Close()

	contentType, err := detectContentType(opened)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_file", "failed to read file")
		return
	}

	photo, err := h.photos.Upload(c.Request.Context(), getUser(c), file.Filename, contentType, opened, file.Size)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, photo)
}

func (h *PhotoHandler) Get(c *gin.Context) {
	item, err := h.photos.Get(c.Request.Context(), getUser(c), c.Param("filename"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, item)
}

func (h *PhotoHandler) List(c *gin.Context) {
	items, err := h.photos.List(c.Request.Context(), getUser(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, items)
}

// detectContentType sniffs the first 512 bytes and rewinds the reader.
// io.ReadFull keeps reading across short reads; files under 512 bytes are
// fine, they just sniff on what is there.
func detectContentType(file io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	read, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:read]), nil
}

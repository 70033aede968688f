package handler

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/photovault/internal/filestore"
)

// FileHandler serves stored objects for stores that sign their own URLs
// (the local store). With S3 the gallery hands out presigned S3 URLs and
// this route answers 404.
type FileHandler struct {
	store filestore.Store
}

func NewFileHandler(store filestore.Store) *FileHandler {
	return &FileHandler{store: store}
}

func (h *FileHandler) Get(c *gin.Context) {
	verifier, ok := h.store.(filestore.SignedURLVerifier)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	key := strings.TrimPrefix(c.Param("key"), "/")
	if filestore.ValidateKey(key) != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	// Keys are guessable ({user_id}/{filename}); only requests carrying a
	// valid unexpired signature from PresignedURL may pass.
	if err := verifier.VerifySignedURL(key, c.Query("exp"), c.Query("sig")); err != nil {
		c.Status(http.StatusForbidden)
		return
	}
	file, err := h.store.Open(c.Request.Context(), key)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	defer file.Close()
	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	_, _ = io.Copy(c.Writer, file)
}

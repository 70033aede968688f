package handler

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// trickleReader returns at most one byte per Read, the way a slow multipart
// part can.
type trickleReader struct {
	r *bytes.Reader
}

func (t *trickleReader) Read(p []byte) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}
	return t.r.Read(p)
}

func (t *trickleReader) Seek(offset int64, whence int) (int64, error) {
	return t.r.Seek(offset, whence)
}

func TestDetectContentType(t *testing.T) {
	png := "\x89PNG\r\n\x1a\n" + strings.Repeat("x", 600)

	contentType, err := detectContentType(bytes.NewReader([]byte(png)))
	require.NoError(t, err)
	require.Equal(t, "image/png", contentType)
}

func TestDetectContentTypeShortReads(t *testing.T) {
	png := "\x89PNG\r\n\x1a\n" + strings.Repeat("x", 600)
	reader := &trickleReader{r: bytes.NewReader([]byte(png))}

	contentType, err := detectContentType(reader)
	require.NoError(t, err)
	require.Equal(t, "image/png", contentType)

	// Rewound for the subsequent upload copy.
	rest, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.Equal(t, png, string(rest))
}

func TestDetectContentTypeSmallFile(t *testing.T) {
	contentType, err := detectContentType(bytes.NewReader([]byte("\x89PNG\r\n\x1a\n")))
	require.NoError(t, err)
	require.Equal(t, "image/png", contentType)

	contentType, err = detectContentType(bytes.NewReader(nil))
	require.NoError(t, err)
	require.Equal(t, "text/plain; charset=utf-8", contentType)
}

package handler

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/photovault/internal/service"
)

var galleryTemplate = template.Must(template.New("gallery").Parse(`<html>
    <head>
        <title>My Personal Cloud Photos</title>
        <style>
            body {
                font-family: Arial, sans-serif;
                background: #f5f5f5;
            }

            h1 {
                margin-left: 20px;
            }

            .gallery {
                display: grid;
                grid-template-columns: repeat(auto-fill, minmax(200px, 1fr));
                gap: 15px;
                padding: 20px;
            }

            .gallery img {
                width: 100%;
                border-radius: 12px;
                object-fit: cover;
                box-shadow: 0 4px 10px rgba(0,0,0,0.1);
            }
        </style>
    </head>
    <body>
        <h1>My Gallery</h1>
        <form action="/api/v1/photos" method="post" enctype="multipart/form-data" style="margin:20px;">
            <input type="file" name="file">
            <button type="submit">Upload</button>
        </form>
        <div class="gallery">
            {{- range . }}
            <img src="{{ .URL }}" alt="{{ .Filename }}" />
            {{- end }}
        </div>
    </body>
</html>
`))

type GalleryHandler struct {
	photos *service.PhotoService
}

func NewGalleryHandler(photos *service.PhotoService) *GalleryHandler {
	return &GalleryHandler{photos: photos}
}

// Gallery renders the user's photos as an HTML grid, newest first.
func (h *GalleryHandler) Gallery(c *gin.Context) {
	items, err := h.photos.List(c.Request.Context(), getUser(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := galleryTemplate.Execute(c.Writer, items); err != nil {
		_ = c.Error(err)
	}
}

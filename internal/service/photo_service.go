package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/avolkov/photovault/internal/filestore"
	"github.com/avolkov/photovault/internal/model"
	appErr "github.com/avolkov/photovault/internal/pkg/errors"
	"github.com/avolkov/photovault/internal/repo"
)

// viewURLTTL bounds how long a gallery link stays fetchable.
const viewURLTTL = 15 * time.Minute

type PhotoService struct {
	photos *repo.PhotoRepo
	store  filestore.Store
}

type PhotoView struct {
	model.Photo
	URL string `json:"url"`
}

func NewPhotoService(photos *repo.PhotoRepo, store filestore.Store) *PhotoService {
	return &PhotoService{photos: photos, store: store}
}

// Upload stores the object under the owner's namespace and records it. The
// key is always derived from the authenticated user, never from the request.
func (s *PhotoService) Upload(ctx context.Context, user *model.User, filename, contentType string, r io.Reader, size int64) (*model.Photo, error) {
	filename = sanitizeFilename(filename)
	if filename == "" {
		return nil, appErr.ErrInvalid
	}
	key := fmt.Sprintf("%d/%s", user.ID, filename)
	if err := s.store.Save(ctx, key, r, size, contentType); err != nil {
		return nil, fmt.Errorf("save object: %w", err)
	}
	photo := &model.Photo{
		UserID:      user.ID,
		Filename:    filename,
		StorageKey:  key,
		ContentType: contentType,
		SizeBytes:   size,
	}
	if err := s.photos.Create(ctx, photo); err != nil {
		return nil, fmt.Errorf("record photo: %w", err)
	}
	return photo, nil
}

// Get returns one of the user's photos by filename, with a view URL. The
// lookup is scoped to the owner, so asking for another user's filename is a
// plain not-found.
func (s *PhotoService) Get(ctx context.Context, user *model.User, filename string) (*PhotoView, error) {
	filename = sanitizeFilename(filename)
	if filename == "" {
		return nil, appErr.ErrInvalid
	}
	photo, err := s.photos.GetByUserAndFilename(ctx, user.ID, filename)
	if err != nil {
		return nil, err
	}
	url, err := s.store.PresignedURL(ctx, photo.StorageKey, viewURLTTL)
	if err != nil {
		return nil, fmt.Errorf("presign %s: %w", photo.Filename, err)
	}
	return &PhotoView{Photo: *photo, URL: url}, nil
}

// List returns the user's photos, newest first, each with a view URL.
func (s *PhotoService) List(ctx context.Context, user *model.User) ([]*PhotoView, error) {
	photos, err := s.photos.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	views := make([]*PhotoView, 0, len(photos))
	for _, photo := range photos {
		url, err := s.store.PresignedURL(ctx, photo.StorageKey, viewURLTTL)
		if err != nil {
			return nil, fmt.Errorf("presign %s: %w", photo.Filename, err)
		}
		views = append(views, &PhotoView{Photo: *photo, URL: url})
	}
	return views, nil
}

// sanitizeFilename strips any path components a client sneaks into the
// multipart filename.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = path.Base(filename)
	if filename == "." || filename == ".." || filename == "/" {
		return ""
	}
	return filename
}

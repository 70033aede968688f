package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/avolkov/photovault/internal/model"
	"github.com/avolkov/photovault/internal/pkg/dbutil"
	appErr "github.com/avolkov/photovault/internal/pkg/errors"
)

type PhotoRepo struct {
	db *sql.DB
}

func NewPhotoRepo(db *sql.DB) *PhotoRepo {
	return &PhotoRepo{db: db}
}

func (r *PhotoRepo) Create(ctx context.Context, photo *model.Photo) error {
	const query = `INSERT INTO photos (user_id, filename, s3_key, content_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, upload_date`
	err := r.db.QueryRowContext(ctx, query,
		photo.UserID, photo.Filename, photo.StorageKey, photo.ContentType, photo.SizeBytes).
		Scan(&photo.ID, &photo.UploadDate)
	if err != nil {
		return err
	}
	return nil
}

// ListByUser returns the user's photos, newest first.
func (r *PhotoRepo) ListByUser(ctx context.Context, userID int64) ([]*model.Photo, error) {
	where := map[string]interface{}{
		"user_id":  userID,
		"_orderby": "upload_date desc, id desc",
	}
	sqlStr, args, err := builder.BuildSelect("photos", where,
		[]string{"id", "user_id", "filename", "s3_key", "content_type", "size_bytes", "upload_date"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var photos []*model.Photo
	for rows.Next() {
		var photo model.Photo
		if err := rows.Scan(&photo.ID, &photo.UserID, &photo.Filename, &photo.StorageKey,
			&photo.ContentType, &photo.SizeBytes, &photo.UploadDate); err != nil {
			return nil, err
		}
		photos = append(photos, &photo)
	}
	return photos, rows.Err()
}

// GetByUserAndFilename scopes the lookup by owner; callers can never reach
// another user's row by guessing a filename.
func (r *PhotoRepo) GetByUserAndFilename(ctx context.Context, userID int64, filename string) (*model.Photo, error) {
	where := map[string]interface{}{
		"user_id":  userID,
		"filename": filename,
	}
	sqlStr, args, err := builder.BuildSelect("photos", where,
		[]string{"id", "user_id", "filename", "s3_key", "content_type", "size_bytes", "upload_date"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	var photo model.Photo
	if err := rows.Scan(&photo.ID, &photo.UserID, &photo.Filename, &photo.StorageKey,
		&photo.ContentType, &photo.SizeBytes, &photo.UploadDate); err != nil {
		return nil, err
	}
	return &photo, nil
}

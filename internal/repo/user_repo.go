package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/avolkov/photovault/internal/model"
	"github.com/avolkov/photovault/internal/pkg/dbutil"
	appErr "github.com/avolkov/photovault/internal/pkg/errors"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts the user and fills in the generated id and created_at.
// Duplicate emails surface as ErrConflict via the unique index.
func (r *UserRepo) Create(ctx context.Context, user *model.User) error {
	const query = `INSERT INTO users (email, hashed_password) VALUES ($1, $2) RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, user.Email, user.HashedPassword).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dbutil.IsConflict(err) {
			return appErr.ErrConflict
		}
		return err
	}
	return nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	where := map[string]interface{}{"email": email}
	sqlStr, args, err := builder.BuildSelect("users", where,
		[]string{"id", "email", "hashed_password", "created_at"})
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
	var user model.User
	if err := rows.Scan(&user.ID, &user.Email, &user.HashedPassword, &user.CreatedAt); err != nil {
		return nil, err
	}
	return &user, nil
}

package repository

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/goodbooks/goodbooks-service/internal/errs"
	"github.com/goodbooks/goodbooks-service/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUser(ctx context.Context, id int) (model.User, error)
	UpdateUserHash(ctx context.Context, id int, hash string) error
}

type userRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewUserRepository(db *sqlx.DB, log *zap.Logger) (*userRepository, error) {
	return &userRepository{
		db:  db,
		log: log.Named("user-repo"),
	}, nil
}

const (
	usersTableName = `users`
)

func (r *userRepository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	q, args, err := qb.Insert(usersTableName).
		Columns("user_firstname", "user_lastname", "user_email", "user_hash").
		Values(user.FirstName, user.LastName, strings.ToLower(user.Email), user.Hash).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var res model.User
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, errs.ErrEmailTaken
		}
		r.log.Error("CreateUser", zap.String("q", q))
		return model.User{}, err
	}

	return res, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	q, args, err := qb.Select("id", "user_firstname", "user_lastname", "user_email", "user_hash").
		From(usersTableName).
		Where(sq.Eq{"lower(user_email)": strings.ToLower(email)}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}

	return user, nil
}

func (r *userRepository) GetUser(ctx context.Context, id int) (model.User, error) {
	q, args, err := qb.Select("id", "user_firstname", "user_lastname", "user_email", "user_hash").
		From(usersTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}

	return user, nil
}

func (r *userRepository) UpdateUserHash(ctx context.Context, id int, hash string) error {
	q := `update users set user_hash = $2 where id = $1`
	res, err := r.db.ExecContext(ctx, q, id, hash)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/goodbooks/goodbooks-service/internal/errs"
	"github.com/goodbooks/goodbooks-service/internal/model"
)

type CatalogRepository interface {
	GetBook(ctx context.Context, isbn string) (model.Book, error)
	SearchBooks(ctx context.Context, query string) ([]model.Book, error)
}

type catalogRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewCatalogRepository(db *sqlx.DB, log *zap.Logger) (*catalogRepository, error) {
	return &catalogRepository{
		db:  db,
		log: log.Named("catalog-repo"),
	}, nil
}

const (
	booksTableName = `books`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *catalogRepository) GetBook(ctx context.Context, isbn string) (model.Book, error) {
	query, args, err := qb.Select("id", "isbn", "title", "author", "pb_year").
		From(booksTableName).
		Where(sq.Eq{"isbn": isbn}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		r.log.Error("GetBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, err
	}

	return book, nil
}

func (r *catalogRepository) SearchBooks(ctx context.Context, query string) ([]model.Book, error) {
	pattern := "%" + query + "%"
	q, args, err := qb.Select("id", "isbn", "title", "author", "pb_year").
		From(booksTableName).
		Where(sq.Or{
			sq.ILike{"isbn": pattern},
			sq.ILike{"title": pattern},
			sq.ILike{"author": pattern},
		}).
		OrderBy("title asc").
		ToSql()
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}

	return books, nil
}

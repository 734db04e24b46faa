package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/goodbooks/goodbooks-service/internal/errs"
	"github.com/goodbooks/goodbooks-service/internal/model"
)

type ReviewRepository interface {
	HasReview(ctx context.Context, isbn string, userID int) (bool, error)
	ListReviews(ctx context.Context, isbn string) ([]model.Review, error)
	AddReview(ctx context.Context, review model.NewReview) (model.Review, error)
	IncrReviewStats(ctx context.Context, isbn string) error
}

type reviewRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewReviewRepository(db *sqlx.DB, log *zap.Logger) (*reviewRepository, error) {
	return &reviewRepository{
		db:  db,
		log: log.Named("review-repo"),
	}, nil
}

const (
	reviewsTableName     = `reviews`
	reviewStatsTableName = `review_stats`
)

func (r *reviewRepository) HasReview(ctx context.Context, isbn string, userID int) (bool, error) {
	q := `
	select exists(
	    select 1 from reviews
	    where book_isbn = $1 and user_id = $2
	)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, isbn, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *reviewRepository) ListReviews(ctx context.Context, isbn string) ([]model.Review, error) {
	q, args, err := qb.Select("id", "review_uid", "book_isbn", "user_id", "user_email", "body", "rating", "created_at").
		From(reviewsTableName).
		Where(sq.Eq{"book_isbn": isbn}).
		OrderBy("created_at asc", "id asc").
		ToSql()
	if err != nil {
		return nil, err
	}

	reviews := make([]model.Review, 0)
	if err := r.db.SelectContext(ctx, &reviews, q, args...); err != nil {
		return nil, err
	}
	return reviews, nil
}

// AddReview inserts a review for the (book, user) pair. A pair that already
// has a row yields errs.ErrDuplicateReview; the reviews table carries a
// unique constraint on (book_isbn, user_id), so a lost check-then-insert
// race surfaces as a wrapped unique violation, not a second row.
func (r *reviewRepository) AddReview(ctx context.Context, review model.NewReview) (model.Review, error) {
	exists, err := r.HasReview(ctx, review.BookISBN, review.UserID)
	if err != nil {
		return model.Review{}, err
	}
	if exists {
		return model.Review{}, errs.ErrDuplicateReview
	}

	q, args, err := qb.Insert(reviewsTableName).
		Columns("review_uid", "book_isbn", "user_id", "user_email", "body", "rating").
		Values(uuid.New(), review.BookISBN, review.UserID, review.UserEmail, review.Body, review.Rating).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Review{}, err
	}

	var res model.Review
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Review{}, errors.Wrap(err, "review uniqueness race")
		}
		r.log.Error("AddReview", zap.String("q", q), zap.Any("args", args))
		return model.Review{}, err
	}

	return res, nil
}

func (r *reviewRepository) IncrReviewStats(ctx context.Context, isbn string) error {
	q := `
	insert into review_stats (book_isbn, submitted_count) values ($1, 1)
	on conflict (book_isbn) do update set submitted_count = review_stats.submitted_count + 1`
	_, err := r.db.ExecContext(ctx, q, isbn)
	return err
}

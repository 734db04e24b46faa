package review

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodbooks/goodbooks-service/internal/errs"
	"github.com/goodbooks/goodbooks-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogStore interface {
	GetBook(ctx context.Context, isbn string) (model.Book, error)
}

type RatingGateway interface {
	GetRatings(ctx context.Context, isbn string) (model.RatingSnapshot, bool)
}

type ReviewLedger interface {
	HasReview(ctx context.Context, isbn string, userID int) (bool, error)
	ListReviews(ctx context.Context, isbn string) ([]model.Review, error)
	AddReview(ctx context.Context, review model.NewReview) (model.Review, error)
}

// Service composes the catalog, the remote rating aggregates and the local
// review ledger into one book view, and owns the submit transition.
type Service struct {
	log     *zap.Logger
	catalog CatalogStore
	ratings RatingGateway
	ledger  ReviewLedger
}

func NewService(catalog CatalogStore, ratings RatingGateway, ledger ReviewLedger, log *zap.Logger) *Service {
	return &Service{
		log:     log,
		catalog: catalog,
		ratings: ratings,
		ledger:  ledger,
	}
}

const (
	minRating = 1
	maxRating = 5
)

func (s *Service) View(ctx context.Context, isbn string) (model.BookDetail, error) {
	book, err := s.catalog.GetBook(ctx, isbn)
	if err != nil {
		return model.BookDetail{}, err
	}
	return s.compose(ctx, book, false)
}

func (s *Service) Submit(ctx context.Context, req model.SubmitReview) (model.BookDetail, error) {
	if strings.TrimSpace(req.Body) == "" {
		return model.BookDetail{}, errs.NewValidationError("review body must not be empty")
	}
	if req.Rating < minRating || req.Rating > maxRating {
		return model.BookDetail{}, errs.NewValidationError("rating must be an integer between %d and %d", minRating, maxRating)
	}

	book, err := s.catalog.GetBook(ctx, req.ISBN)
	if err != nil {
		return model.BookDetail{}, err
	}

	if _, err := s.ledger.AddReview(ctx, model.NewReview{
		BookISBN:  req.ISBN,
		UserID:    req.UserID,
		UserEmail: req.UserEmail,
		Body:      req.Body,
		Rating:    req.Rating,
	}); err != nil {
		if errors.Is(err, errs.ErrDuplicateReview) {
			s.log.Debug("duplicate review",
				zap.String("isbn", req.ISBN), zap.Int("userID", req.UserID))
			return s.compose(ctx, book, true)
		}
		return model.BookDetail{}, err
	}

	// re-fetch so the caller sees the just-created review
	return s.compose(ctx, book, false)
}

// compose fans out to the rating gateway and the ledger in parallel; the
// two reads have no data dependency.
func (s *Service) compose(ctx context.Context, book model.Book, alreadyReviewed bool) (model.BookDetail, error) {
	var (
		snapshot  *model.RatingSnapshot
		bookViews []model.Review
	)
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		if snap, ok := s.ratings.GetRatings(ctx, book.ISBN); ok {
			snapshot = &snap
		}
		return nil
	})
	gg.Go(func() error {
		reviews, err := s.ledger.ListReviews(ctx, book.ISBN)
		if err != nil {
			return err
		}
		bookViews = reviews
		return nil
	})
	if err := gg.Wait(); err != nil {
		return model.BookDetail{}, err
	}

	return model.BookDetail{
		Book:            book,
		Ratings:         snapshot,
		Reviews:         bookViews,
		AlreadyReviewed: alreadyReviewed,
	}, nil
}

package ratings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/goodbooks/goodbooks-service/config"
	"github.com/goodbooks/goodbooks-service/internal/model"
	cb "github.com/goodbooks/goodbooks-service/pkg/circuit_breaker"
)

// Service fetches aggregate rating numbers for a book from the remote
// rating service. Lookups are best-effort and single-shot: any transport
// error, non-2xx status, malformed payload or missing field resolves to
// "unavailable" and never fails the caller's request.
type Service struct {
	log     *zap.Logger
	client  *http.Client
	cfg     config.Ratings
	breaker cb.CircuitBreaker
}

func NewService(log *zap.Logger, cfg config.Ratings) *Service {
	return &Service{
		log:     log.Named("ratings"),
		client:  &http.Client{},
		cfg:     cfg,
		breaker: cb.New(20, 30*time.Second, 0.5, 5),
	}
}

// remote payload: only two fields matter, the rest is discarded.
type reviewCounts struct {
	Books []struct {
		AverageRating *float64 `json:"average_rating"`
		ReviewsCount  *int     `json:"reviews_count"`
	} `json:"books"`
}

func (s *Service) GetRatings(ctx context.Context, isbn string) (model.RatingSnapshot, bool) {
	var snapshot model.RatingSnapshot
	err := s.breaker.Call(func() error {
		var err error
		snapshot, err = s.fetch(ctx, isbn)
		return err
	})
	if err != nil {
		s.log.Warn("ratings unavailable", zap.String("isbn", isbn), zap.Error(err))
		return model.RatingSnapshot{}, false
	}
	return snapshot, true
}

func (s *Service) fetch(ctx context.Context, isbn string) (model.RatingSnapshot, error) {
	u := fmt.Sprintf("%s/book/review_counts.json", s.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return model.RatingSnapshot{}, err
	}
	q := url.Values{}
	q.Set("key", s.cfg.Key)
	q.Set("isbns", isbn)
	req.URL.RawQuery = q.Encode()

	resp, err := s.client.Do(req)
	if err != nil {
		return model.RatingSnapshot{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.RatingSnapshot{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var counts reviewCounts
	if err := json.NewDecoder(resp.Body).Decode(&counts); err != nil {
		return model.RatingSnapshot{}, err
	}
	if len(counts.Books) == 0 {
		return model.RatingSnapshot{}, fmt.Errorf("isbn %s not in payload", isbn)
	}
	book := counts.Books[0]
	if book.AverageRating == nil || book.ReviewsCount == nil {
		return model.RatingSnapshot{}, fmt.Errorf("payload misses rating fields")
	}

	return model.RatingSnapshot{
		Average: *book.AverageRating,
		Count:   *book.ReviewsCount,
	}, nil
}

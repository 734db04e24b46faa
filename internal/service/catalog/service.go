package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/goodbooks/goodbooks-service/internal/model"
	"github.com/goodbooks/goodbooks-service/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.CatalogRepository
}

func NewService(repo repository.CatalogRepository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) GetBook(ctx context.Context, isbn string) (model.Book, error) {
	return s.repo.GetBook(ctx, isbn)
}

func (s *Service) SearchBooks(ctx context.Context, query string) ([]model.Book, error) {
	return s.repo.SearchBooks(ctx, query)
}

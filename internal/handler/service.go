package handler

import (
	"context"

	authsvc "github.com/goodbooks/goodbooks-service/internal/service/auth"
	"github.com/goodbooks/goodbooks-service/internal/service/catalog"
	reviewsvc "github.com/goodbooks/goodbooks-service/internal/service/review"

	"github.com/goodbooks/goodbooks-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ CatalogService = (*catalog.Service)(nil)
	_ ReviewService  = (*reviewsvc.Service)(nil)
	_ AuthService    = (*authsvc.Service)(nil)
)

type CatalogService interface {
	GetBook(ctx context.Context, isbn string) (model.Book, error)
	SearchBooks(ctx context.Context, query string) ([]model.Book, error)
}

type ReviewService interface {
	View(ctx context.Context, isbn string) (model.BookDetail, error)
	Submit(ctx context.Context, req model.SubmitReview) (model.BookDetail, error)
}

type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error
}

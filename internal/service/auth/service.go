package auth

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/goodbooks/goodbooks-service/config"
	"github.com/goodbooks/goodbooks-service/internal/errs"
	"github.com/goodbooks/goodbooks-service/internal/model"
	pkgauth "github.com/goodbooks/goodbooks-service/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type UserStore interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUser(ctx context.Context, id int) (model.User, error)
	UpdateUserHash(ctx context.Context, id int, hash string) error
}

type Service struct {
	log   *zap.Logger
	users UserStore
	cfg   config.JWT
}

func NewService(users UserStore, cfg config.JWT, log *zap.Logger) *Service {
	return &Service{
		log:   log,
		users: users,
		cfg:   cfg,
	}
}

func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}
	user, err := s.users.CreateUser(ctx, model.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.ToLower(req.Email),
		Hash:      string(hash),
	})
	if err != nil {
		return model.User{}, err
	}
	s.log.Info("user registered", zap.String("email", user.Email))
	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", errs.ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(password)); err != nil {
		return "", errs.ErrInvalidCredentials
	}
	return pkgauth.NewToken([]byte(s.cfg.Key), user.ID, user.Email, s.cfg.TTL)
}

func (s *Service) ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(oldPassword)); err != nil {
		return errs.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdateUserHash(ctx, userID, string(hash))
}

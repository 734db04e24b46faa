package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/goodbooks/goodbooks-service/config"
	md "github.com/goodbooks/goodbooks-service/pkg/middleware"
	"github.com/goodbooks/goodbooks-service/pkg/validate"
)

type Handler struct {
	catalogSvc CatalogService
	reviewSvc  ReviewService
	authSvc    AuthService
	enqueuer   Enqueuer
	jwtKey     []byte
	log        *zap.Logger
}

func New(catalogSvc CatalogService, reviewSvc ReviewService, authSvc AuthService, enqueuer Enqueuer, cfg config.JWT, log *zap.Logger) *Handler {
	h := &Handler{
		catalogSvc: catalogSvc,
		reviewSvc:  reviewSvc,
		authSvc:    authSvc,
		enqueuer:   enqueuer,
		jwtKey:     []byte(cfg.Key),
		log:        log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/register", h.Register)
	api.POST("/login", h.Login)

	authed := api.Group("", md.NewJwtAuthentication(h.jwtKey))
	authed.POST("/password", h.ChangePassword)
	authed.GET("/books", h.SearchBooks)
	authed.GET("/books/:isbn", h.GetBook)
	authed.POST("/books/:isbn/reviews", h.SubmitReview)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

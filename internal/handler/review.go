package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/goodbooks/goodbooks-service/internal/errs"
	"github.com/goodbooks/goodbooks-service/internal/model"
	"github.com/goodbooks/goodbooks-service/pkg/auth"
)

func (h *Handler) SearchBooks(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("query is required"))
	}

	books, err := h.catalogSvc.SearchBooks(c.Request().Context(), query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	isbn := c.Param("isbn")
	detail, err := h.reviewSvc.View(c.Request().Context(), isbn)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) SubmitReview(c echo.Context) error {
	identity, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no identity")
	}

	var req model.SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	isbn := c.Param("isbn")
	detail, err := h.reviewSvc.Submit(c.Request().Context(), model.SubmitReview{
		ISBN:      isbn,
		UserID:    identity.UserID,
		UserEmail: identity.Email,
		Body:      req.Body,
		Rating:    req.Rating,
	})
	if err != nil {
		var vErr *errs.ValidationError
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.As(err, &vErr):
			return echo.NewHTTPError(http.StatusBadRequest, vErr.Reason)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if detail.AlreadyReviewed {
		// expected outcome: existing reviews plus a duplicate notice
		return c.JSON(http.StatusOK, detail)
	}

	if h.enqueuer != nil {
		if err := h.enqueuer.EnqueueReviewCreated(isbn, identity.UserID, req.Rating); err != nil {
			h.log.Warn("enqueue review.created", zap.Error(err))
		}
	}

	return c.JSON(http.StatusCreated, detail)
}

package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/goodbooks/goodbooks-service/config"
	"github.com/goodbooks/goodbooks-service/internal/errs"
	"github.com/goodbooks/goodbooks-service/internal/handler"
	service_mocks "github.com/goodbooks/goodbooks-service/internal/handler/mocks"
	"github.com/goodbooks/goodbooks-service/internal/model"
	pkgauth "github.com/goodbooks/goodbooks-service/pkg/auth"
	md "github.com/goodbooks/goodbooks-service/pkg/middleware"
	"github.com/goodbooks/goodbooks-service/pkg/validate"
)

var jwtCfg = config.JWT{Key: "test-key", TTL: time.Hour}

type fakeEnqueuer struct {
	calls int
}

func (f *fakeEnqueuer) EnqueueReviewCreated(isbn string, userID, rating int) error {
	f.calls++
	return nil
}

var testBook = model.Book{
	ISBN:   "0001",
	Title:  "Krondor: The Betrayal",
	Author: "Raymond E. Feist",
	Year:   1998,
}

var testReview = model.Review{
	ReviewUid: "r1",
	UserEmail: "u1@mail.com",
	Body:      "Great read",
	Rating:    5,
	CreatedAt: time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC),
}

func TestHandler_GetBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockReviewService, isbn string)

	var tests = []struct {
		name         string
		isbn         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			isbn: "0001",
			mockBehavior: func(r *service_mocks.MockReviewService, isbn string) {
				r.EXPECT().
					View(gomock.Any(), isbn).
					Return(model.BookDetail{
						Book:    testBook,
						Ratings: &model.RatingSnapshot{Average: 4.2, Count: 120},
						Reviews: []model.Review{testReview},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"book":{"isbn":"0001","title":"Krondor: The Betrayal","author":"Raymond E. Feist","year":1998},"ratings":{"averageScore":4.2,"reviewsCount":120},"reviews":[{"reviewUid":"r1","userEmail":"u1@mail.com","body":"Great read","rating":5,"createdAt":"2023-05-01T10:00:00Z"}]}`,
			},
		},
		{
			name: "ok. ratings absent",
			isbn: "0001",
			mockBehavior: func(r *service_mocks.MockReviewService, isbn string) {
				r.EXPECT().
					View(gomock.Any(), isbn).
					Return(model.BookDetail{
						Book:    testBook,
						Reviews: []model.Review{},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"book":{"isbn":"0001","title":"Krondor: The Betrayal","author":"Raymond E. Feist","year":1998},"reviews":[]}`,
			},
		},
		{
			name: "err. not found",
			isbn: "9999",
			mockBehavior: func(r *service_mocks.MockReviewService, isbn string) {
				r.EXPECT().
					View(gomock.Any(), isbn).
					Return(model.BookDetail{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name: "err. internal",
			isbn: "0001",
			mockBehavior: func(r *service_mocks.MockReviewService, isbn string) {
				r.EXPECT().
					View(gomock.Any(), isbn).
					Return(model.BookDetail{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			reviewSvc := service_mocks.NewMockReviewService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(nil, reviewSvc, nil, nil, jwtCfg, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/books/:isbn", h.GetBook)

			r := httptest.NewRequest(http.MethodGet, "/books/"+tt.isbn, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(reviewSvc, tt.isbn)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_SubmitReview(t *testing.T) {
	t.Parallel()

	token, err := pkgauth.NewToken([]byte(jwtCfg.Key), 7, "u1@mail.com", time.Hour)
	require.NoError(t, err)

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockReviewService)

	var tests = []struct {
		name           string
		body           string
		withToken      bool
		mockBehavior   mockBehavior
		response       response
		expectEnqueued int
	}{
		{
			name:      "created",
			body:      `{"body":"Great read","rating":5}`,
			withToken: true,
			mockBehavior: func(r *service_mocks.MockReviewService) {
				r.EXPECT().
					Submit(gomock.Any(), model.SubmitReview{
						ISBN:      "0001",
						UserID:    7,
						UserEmail: "u1@mail.com",
						Body:      "Great read",
						Rating:    5,
					}).
					Return(model.BookDetail{
						Book:    testBook,
						Reviews: []model.Review{testReview},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"book":{"isbn":"0001","title":"Krondor: The Betrayal","author":"Raymond E. Feist","year":1998},"reviews":[{"reviewUid":"r1","userEmail":"u1@mail.com","body":"Great read","rating":5,"createdAt":"2023-05-01T10:00:00Z"}]}`,
			},
			expectEnqueued: 1,
		},
		{
			name:      "duplicate review is 200 with flag, not enqueued",
			body:      `{"body":"Great read","rating":5}`,
			withToken: true,
			mockBehavior: func(r *service_mocks.MockReviewService) {
				r.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(model.BookDetail{
						Book:            testBook,
						Reviews:         []model.Review{testReview},
						AlreadyReviewed: true,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"book":{"isbn":"0001","title":"Krondor: The Betrayal","author":"Raymond E. Feist","year":1998},"reviews":[{"reviewUid":"r1","userEmail":"u1@mail.com","body":"Great read","rating":5,"createdAt":"2023-05-01T10:00:00Z"}],"alreadyReviewed":true}`,
			},
		},
		{
			name:         "err. rating out of bounds rejected before the service",
			body:         `{"body":"Great read","rating":9}`,
			withToken:    true,
			mockBehavior: func(r *service_mocks.MockReviewService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name:      "err. validation from the workflow",
			body:      `{"body":"   ","rating":5}`,
			withToken: true,
			mockBehavior: func(r *service_mocks.MockReviewService) {
				r.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(model.BookDetail{}, errs.NewValidationError("review body must not be empty"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"review body must not be empty"}`,
			},
		},
		{
			name:      "err. book not found",
			body:      `{"body":"Great read","rating":5}`,
			withToken: true,
			mockBehavior: func(r *service_mocks.MockReviewService) {
				r.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(model.BookDetail{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:         "err. no token short-circuits",
			body:         `{"body":"Great read","rating":5}`,
			withToken:    false,
			mockBehavior: func(r *service_mocks.MockReviewService) {},
			response: response{
				expectedCode: http.StatusUnauthorized,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			reviewSvc := service_mocks.NewMockReviewService(c)
			enqueuer := &fakeEnqueuer{}
			log := zap.NewExample().Named("test")
			h := handler.New(nil, reviewSvc, nil, enqueuer, jwtCfg, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/books/:isbn/reviews", h.SubmitReview, md.NewJwtAuthentication([]byte(jwtCfg.Key)))

			r := httptest.NewRequest(http.MethodPost, "/books/0001/reviews", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.withToken {
				r.Header.Set(md.AuthorizationHeader, "Bearer "+token)
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(reviewSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
			require.Equal(t, tt.expectEnqueued, enqueuer.calls)
		})
	}
}

func TestHandler_SearchBooks(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()
	catalogSvc := service_mocks.NewMockCatalogService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(catalogSvc, nil, nil, nil, jwtCfg, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/books", h.SearchBooks)

	t.Run("ok", func(t *testing.T) {
		catalogSvc.EXPECT().
			SearchBooks(gomock.Any(), "krondor").
			Return([]model.Book{testBook}, nil)

		r := httptest.NewRequest(http.MethodGet, "/books?query=krondor", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`[{"isbn":"0001","title":"Krondor: The Betrayal","author":"Raymond E. Feist","year":1998}]`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. query required", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/books", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ok. no match is an empty list", func(t *testing.T) {
		catalogSvc.EXPECT().
			SearchBooks(gomock.Any(), "nothing").
			Return([]model.Book{}, nil)

		r := httptest.NewRequest(http.MethodGet, "/books?query=nothing", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, `[]`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	type response struct {
		expectedCode int
		expectedBody string
	}
	var tests = []struct {
		name         string
		body         string
		mockBehavior func(r *service_mocks.MockAuthService)
		response     response
	}{
		{
			name: "ok",
			body: `{"email":"jane@mail.com","password":"secret-1"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Login(gomock.Any(), "jane@mail.com", "secret-1").
					Return("tok-123", nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"token":"tok-123"}`,
			},
		},
		{
			name: "err. invalid credentials",
			body: `{"email":"jane@mail.com","password":"nope"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Login(gomock.Any(), "jane@mail.com", "nope").
					Return("", errs.ErrInvalidCredentials)
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"invalid email or password"}`,
			},
		},
		{
			name:         "err. missing password rejected by validator",
			body:         `{"email":"jane@mail.com"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			authSvc := service_mocks.NewMockAuthService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(nil, nil, authSvc, nil, jwtCfg, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/login", h.Login)

			r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(authSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()
	authSvc := service_mocks.NewMockAuthService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(nil, nil, authSvc, nil, jwtCfg, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/register", h.Register)

	post := func(body string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)
		return w
	}

	t.Run("created", func(t *testing.T) {
		authSvc.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(model.User{ID: 7, FirstName: "Jane", LastName: "Doe", Email: "jane@mail.com"}, nil)

		w := post(`{"firstName":"Jane","lastName":"Doe","email":"jane@mail.com","password":"secret-1","confirmPassword":"secret-1"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t,
			`{"id":7,"firstName":"Jane","lastName":"Doe","email":"jane@mail.com"}`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. email taken", func(t *testing.T) {
		authSvc.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(model.User{}, errs.ErrEmailTaken)

		w := post(`{"firstName":"Jane","lastName":"Doe","email":"jane@mail.com","password":"secret-1","confirmPassword":"secret-1"}`)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("err. password confirmation mismatch", func(t *testing.T) {
		w := post(`{"firstName":"Jane","lastName":"Doe","email":"jane@mail.com","password":"secret-1","confirmPassword":"other"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	for i, body := range []string{
		fmt.Sprintf(`{"lastName":"Doe","email":"u%d@mail.com","password":"secret-1","confirmPassword":"secret-1"}`, 0),
		fmt.Sprintf(`{"firstName":"Jane","email":"u%d@mail.com","password":"secret-1","confirmPassword":"secret-1"}`, 1),
		`{"firstName":"Jane","lastName":"Doe","password":"secret-1","confirmPassword":"secret-1"}`,
		`{"firstName":"Jane","lastName":"Doe","email":"jane@mail.com","confirmPassword":"secret-1"}`,
	} {
		t.Run(fmt.Sprintf("err. missing field %d", i), func(t *testing.T) {
			w := post(body)
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

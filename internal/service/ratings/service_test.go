package ratings_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/goodbooks/goodbooks-service/config"
	"github.com/goodbooks/goodbooks-service/internal/service/ratings"
)

func newGateway(t *testing.T, handler http.HandlerFunc) *ratings.Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return ratings.NewService(zap.NewExample().Named("test"), config.Ratings{
		BaseURL: srv.URL,
		Key:     "test-key",
	})
}

func TestService_GetRatings(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/book/review_counts.json", r.URL.Path)
			require.Equal(t, "0001", r.URL.Query().Get("isbns"))
			require.Equal(t, "test-key", r.URL.Query().Get("key"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"books":[{"id":1,"isbn":"0001","average_rating":4.2,"reviews_count":120,"work_ratings_count":999}]}`))
		})

		snapshot, ok := gw.GetRatings(context.Background(), "0001")
		require.True(t, ok)
		require.Equal(t, 4.2, snapshot.Average)
		require.Equal(t, 120, snapshot.Count)
	})

	t.Run("non-200 status resolves to unavailable", func(t *testing.T) {
		t.Parallel()
		gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, ok := gw.GetRatings(context.Background(), "0001")
		require.False(t, ok)
	})

	t.Run("malformed payload resolves to unavailable", func(t *testing.T) {
		t.Parallel()
		gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"books":`))
		})

		_, ok := gw.GetRatings(context.Background(), "0001")
		require.False(t, ok)
	})

	t.Run("missing fields resolve to unavailable", func(t *testing.T) {
		t.Parallel()
		gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"books":[{"isbn":"0001"}]}`))
		})

		_, ok := gw.GetRatings(context.Background(), "0001")
		require.False(t, ok)
	})

	t.Run("empty books array resolves to unavailable", func(t *testing.T) {
		t.Parallel()
		gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"books":[]}`))
		})

		_, ok := gw.GetRatings(context.Background(), "0001")
		require.False(t, ok)
	})

	t.Run("transport error resolves to unavailable", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		gw := ratings.NewService(zap.NewExample().Named("test"), config.Ratings{BaseURL: srv.URL})
		srv.Close()

		_, ok := gw.GetRatings(context.Background(), "0001")
		require.False(t, ok)
	})
}

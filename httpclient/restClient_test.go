package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Value string `json:"value"`
}

func TestRestClient_Get(t *testing.T) {
	t.Parallel()

	t.Run("should unmarshal response", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			_, _ = w.Write([]byte(`{"value":"ok"}`))
		}))
		defer srv.Close()

		rc, err := NewRestClient(ArgsRestClient{})
		require.Nil(t, err)

		response := &testPayload{}
		err = rc.Get(context.Background(), srv.URL, response)
		assert.Nil(t, err)
		assert.Equal(t, "ok", response.Value)
	})
	t.Run("server error should be reported", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		rc, _ := NewRestClient(ArgsRestClient{})
		err := rc.Get(context.Background(), srv.URL, &testPayload{})
		assert.True(t, errors.Is(err, errHTTPStatus))
	})
}

func TestRestClient_BearerAuth(t *testing.T) {
	t.Parallel()

	t.Run("token is attached to requests", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer initial-token", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		rc, _ := NewRestClient(ArgsRestClient{BearerToken: "initial-token"})
		err := rc.Get(context.Background(), srv.URL, &testPayload{})
		assert.Nil(t, err)
	})
	t.Run("retries exactly once on auth failure", func(t *testing.T) {
		t.Parallel()

		numCalls := uint32(0)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls := atomic.AddUint32(&numCalls, 1)
			if calls == 1 {
				assert.Equal(t, "Bearer stale", r.Header.Get("Authorization"))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			assert.Equal(t, "Bearer fresh", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"value":"after refresh"}`))
		}))
		defer srv.Close()

		refreshCalls := 0
		rc, _ := NewRestClient(ArgsRestClient{
			BearerToken: "stale",
			RefreshHandler: func(ctx context.Context) (string, error) {
				refreshCalls++
				return "fresh", nil
			},
		})

		response := &testPayload{}
		err := rc.Get(context.Background(), srv.URL, response)
		assert.Nil(t, err)
		assert.Equal(t, "after refresh", response.Value)
		assert.Equal(t, 1, refreshCalls)
		assert.Equal(t, uint32(2), atomic.LoadUint32(&numCalls))
	})
	t.Run("second auth failure is not retried again", func(t *testing.T) {
		t.Parallel()

		numCalls := uint32(0)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddUint32(&numCalls, 1)
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		rc, _ := NewRestClient(ArgsRestClient{
			BearerToken: "stale",
			RefreshHandler: func(ctx context.Context) (string, error) {
				return "still stale", nil
			},
		})

		err := rc.Get(context.Background(), srv.URL, &testPayload{})
		assert.True(t, errors.Is(err, errHTTPStatus))
		assert.Equal(t, uint32(2), atomic.LoadUint32(&numCalls))
	})
	t.Run("refresh handler error aborts", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		expectedErr := errors.New("expected error")
		rc, _ := NewRestClient(ArgsRestClient{
			BearerToken: "stale",
			RefreshHandler: func(ctx context.Context) (string, error) {
				return "", expectedErr
			},
		})

		err := rc.Get(context.Background(), srv.URL, &testPayload{})
		assert.True(t, errors.Is(err, errTokenRefreshFailed))
	})
}

func TestRestClient_Post(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"value":"created"}`))
	}))
	defer srv.Close()

	rc, _ := NewRestClient(ArgsRestClient{})
	response := &testPayload{}
	err := rc.Post(context.Background(), srv.URL, &testPayload{Value: "in"}, response)
	assert.Nil(t, err)
	assert.Equal(t, "created", response.Value)
}

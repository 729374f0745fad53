package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() *Client {
	return New(Config{
		UserAgent: "jobfeed-test/1.0",
		Timeout:   5 * time.Second,
		Backoff:   5 * time.Millisecond,
	})
}

func TestFetchBodySuccess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "jobfeed-test/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		fmt.Fprint(w, `{"jobs":[]}`)
	}))
	defer srv.Close()

	body, err := newTestClient().FetchBody(context.Background(), srv.URL, "application/json")
	require.NoError(t, err)
	assert.Equal(t, `{"jobs":[]}`, string(body))
}

func TestFetchBodyFollowsRedirects(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Location", "/middle")
		w.WriteHeader(http.StatusMovedPermanently)
	})
	mux.HandleFunc("/middle", func(w http.ResponseWriter, _ *http.Request) {
		// Relative location must resolve against the current URL.
		w.Header().Set("Location", "final")
		w.WriteHeader(http.StatusFound)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "payload")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	body, err := newTestClient().FetchBody(context.Background(), srv.URL+"/start", "application/xml")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(body))
}

func TestFetchBodyRedirectWithoutLocation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusMovedPermanently)
	}))
	defer srv.Close()

	_, err := newTestClient().FetchBody(context.Background(), srv.URL, "")
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "redirect-without-location", fetchErr.Reason)
}

func TestFetchBodyTooManyRedirects(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Location", "/loop")
		w.WriteHeader(http.StatusFound)
	}))
	defer srv.Close()

	_, err := newTestClient().FetchBody(context.Background(), srv.URL, "")
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "too-many-redirects", fetchErr.Reason)
}

func TestFetchBodyRetriesForbiddenOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		fmt.Fprint(w, "ok now")
	}))
	defer srv.Close()

	body, err := newTestClient().FetchBody(context.Background(), srv.URL, "")
	require.NoError(t, err)
	assert.Equal(t, "ok now", string(body))
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchBodySecondForbiddenFails(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestClient().FetchBody(context.Background(), srv.URL, "")
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusForbidden, fetchErr.Status)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchBodyServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient().FetchBody(context.Background(), srv.URL, "")
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusInternalServerError, fetchErr.Status)
}

func TestFetchBodyHonorsContextDuringBackoff(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := New(Config{Backoff: time.Minute, Timeout: 5 * time.Second})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.FetchBody(ctx, srv.URL, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/url-shortener/internal/apitest"
	"github.com/ytget/url-shortener/internal/model"
)

func TestNewClient_TrimsBaseURL(t *testing.T) {
	client := NewClient("http://localhost:8080///", nil)

	assert.Equal(t, "http://localhost:8080", client.BaseURL())
	assert.Zero(t, client.httpClient.Timeout, "no client-side timeout is enforced")
}

func TestShorten_Success(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.SetShortenResult(model.ShortenResult{
		ShortCode: "abc123",
		URL:       "http://example.com/very/long/path",
		CreatedAt: "2024-01-01T00:00:00Z",
		ExpiresAt: "2024-02-01T00:00:00Z",
	})
	client := NewClient(srv.URL, srv.Client())

	result, err := client.Shorten(context.Background(), "http://example.com/very/long/path")
	require.NoError(t, err)
	assert.Equal(t, "abc123", result.ShortCode)
	assert.Equal(t, "http://example.com/very/long/path", result.URL)
	assert.Equal(t, "2024-02-01T00:00:00Z", result.ExpiresAt)

	requests := srv.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPost, requests[0].Method)
	assert.Equal(t, PathShorten, requests[0].Path)
	assert.Equal(t, "application/json", requests[0].ContentType)
	assert.Equal(t, `"http://example.com/very/long/path"`, requests[0].Body)
}

func TestShorten_APIErrorWithMessage(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.FailShorten(http.StatusBadRequest, "URL is blocked")
	client := NewClient(srv.URL, srv.Client())

	_, err := client.Shorten(context.Background(), "http://example.com")
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "URL is blocked", apiErr.Message)
	assert.False(t, IsNotFound(err))
	assert.False(t, IsNetwork(err))
}

func TestShorten_APIErrorWithoutMessage(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.FailShorten(http.StatusInternalServerError, "")
	client := NewClient(srv.URL, srv.Client())

	_, err := client.Shorten(context.Background(), "http://example.com")

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Empty(t, apiErr.Message)
}

func TestShorten_UndecodableSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).Shorten(context.Background(), "http://example.com")

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, apiErr.Status)
}

func TestShorten_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := NewClient(base, nil).Shorten(context.Background(), "http://example.com")
	require.Error(t, err)
	assert.True(t, IsNetwork(err))

	var nErr *NetworkError
	require.True(t, errors.As(err, &nErr))
	assert.Equal(t, "shorten", nErr.Op)
	assert.NotNil(t, errors.Unwrap(nErr))
}

func TestFetchStats_Success(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.AddStats(model.StatsResult{
		OriginalURL: "http://example.com",
		ShortCode:   "ABC",
		AccessCount: 5,
		CreatedAt:   "2024-01-01T00:00:00Z",
		UpdatedAt:   "2024-01-02T00:00:00Z",
		ExpiresAt:   "2024-02-01T00:00:00Z",
	})
	client := NewClient(srv.URL, srv.Client())

	stats, err := client.FetchStats(context.Background(), "ABC")
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.AccessCount)
	assert.Equal(t, "http://example.com", stats.OriginalURL)

	requests := srv.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "/api/shorten/ABC/stats", requests[0].Path)
}

func TestFetchStats_EscapesCode(t *testing.T) {
	srv := apitest.NewServer(t)
	client := NewClient(srv.URL, srv.Client())

	_, err := client.FetchStats(context.Background(), "a/b c")
	require.Error(t, err)

	requests := srv.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "/api/shorten/a%2Fb%20c/stats", requests[0].Path)
}

func TestFetchStats_NotFound(t *testing.T) {
	srv := apitest.NewServer(t)
	client := NewClient(srv.URL, srv.Client())

	_, err := client.FetchStats(context.Background(), "XYZ")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.True(t, errors.Is(err, ErrNotFound))

	_, isAPI := AsAPIError(err)
	assert.False(t, isAPI, "404 must be distinct from a generic API error")
}

func TestFetchStats_OtherStatus(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.FailStats(http.StatusServiceUnavailable)
	client := NewClient(srv.URL, srv.Client())

	_, err := client.FetchStats(context.Background(), "ABC")

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.False(t, IsNotFound(err))
}

func TestFetchStats_NegativeCountClamped(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.AddStats(model.StatsResult{ShortCode: "neg", AccessCount: -7})

	stats, err := NewClient(srv.URL, srv.Client()).FetchStats(context.Background(), "neg")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.AccessCount)
}

func TestFetchStats_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := NewClient(base, nil).FetchStats(context.Background(), "ABC")
	assert.True(t, IsNetwork(err))
	assert.False(t, IsNotFound(err))
}

func TestCheckHealth(t *testing.T) {
	srv := apitest.NewServer(t)
	client := NewClient(srv.URL, srv.Client())

	assert.True(t, client.CheckHealth(context.Background()))

	srv.SetHealthStatus(http.StatusNoContent)
	assert.True(t, client.CheckHealth(context.Background()))

	srv.SetHealthStatus(http.StatusServiceUnavailable)
	assert.False(t, client.CheckHealth(context.Background()))
}

func TestCheckHealth_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	assert.False(t, NewClient(base, nil).CheckHealth(context.Background()))
	assert.False(t, NewClient("://bad base", nil).CheckHealth(context.Background()))
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "api error: status 500", (&APIError{Status: 500}).Error())
	assert.Equal(t, "api error: status 400: bad", (&APIError{Status: 400, Message: "bad"}).Error())
}

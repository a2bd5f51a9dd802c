package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReleaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/abhisek/quizdrill/releases/latest" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `{"tag_name": %q, "html_url": "https://github.com/abhisek/quizdrill/releases/tag/%s"}`, tag, tag)
	}))
}

func TestCheck_UpdateAvailable(t *testing.T) {
	srv := newReleaseServer(t, "v1.2.0")
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)

	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
	assert.Contains(t, result.ReleaseURL, "v1.2.0")
}

func TestCheck_AlreadyLatest(t *testing.T) {
	srv := newReleaseServer(t, "v1.2.0")
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))

	for _, version := range []string{"v1.2.0", "v1.3.0"} {
		result, err := c.Check(context.Background(), &CheckInput{Version: version})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable, "version %s", version)
	}
}

func TestCheck_BareVersionNormalized(t *testing.T) {
	srv := newReleaseServer(t, "v1.2.0")
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	result, err := c.Check(context.Background(), &CheckInput{Version: "1.1.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
}

func TestCheck_DevBuildNeverUpdates(t *testing.T) {
	srv := newReleaseServer(t, "v1.2.0")
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	result, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.NoError(t, err)

	assert.False(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
}

func TestCheck_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

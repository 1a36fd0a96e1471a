package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientFetchOK(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Contains(t, r.Header.Get("Accept"), "xml")
		w.Write([]byte(`<mchData/>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 60, 5*time.Second, nil)
	body, err := c.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `<mchData/>`, string(body))
}

func TestClientFetchNon200(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 60, 5*time.Second, nil)
	_, err := c.Fetch(context.Background())

	var ferr *FetchError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, http.StatusNotFound, ferr.StatusCode)
	assert.Equal(t, srv.URL, ferr.URL)
}

func TestClientFetchCancelledContext(t *testing.T) {
	t.Parallel()

	c := NewClient("http://example.invalid/feed.xml", 60, 5*time.Second, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Fetch(ctx)
	require.Error(t, err)
}

func TestClientDefaults(t *testing.T) {
	t.Parallel()

	c := NewClient("", 0, 0, nil)
	assert.Equal(t, DefaultFeedURL, c.FeedURL())
	assert.Equal(t, defaultTimeout, c.httpClient.Timeout)
}

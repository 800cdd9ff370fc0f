package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New("localhost:4000")
	assert.Error(t, err)
	_, err = New("http://localhost:4000")
	assert.NoError(t, err)
}

func TestURL(t *testing.T) {
	client, err := New("https://slpdb.example.com/api?key=abc")
	require.NoError(t, err)
	assert.Equal(t, "https://slpdb.example.com/api/q/e30=?key=abc&limit=1",
		client.URL("/q/e30=", url.Values{"limit": {"1"}}))
}

func TestGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "slp", r.Header.Get("X-Client"))
		switch r.URL.Path {
		case "/json":
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			_, _ = w.Write([]byte(`{"ok":true}`))
		default:
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("not found"))
		}
	}))
	t.Cleanup(server.Close)

	client, err := New(server.URL, Config{Headers: map[string]string{"X-Client": "slp"}})
	require.NoError(t, err)

	t.Run("json", func(t *testing.T) {
		resp, err := client.Get(context.Background(), "/json", RequestOptions{})
		require.NoError(t, err)
		assert.True(t, resp.IsSuccess())
		var out struct {
			Ok bool `json:"ok"`
		}
		require.NoError(t, resp.UnmarshalBody(&out))
		assert.True(t, out.Ok)
	})
	t.Run("plain_text", func(t *testing.T) {
		resp, err := client.Get(context.Background(), "/missing", RequestOptions{})
		require.NoError(t, err)
		assert.False(t, resp.IsSuccess())
		var out map[string]any
		assert.Error(t, resp.UnmarshalBody(&out))
	})
	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := client.Get(ctx, "/json", RequestOptions{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

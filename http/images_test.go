package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	presshttp "github.com/fwojciec/pressclip/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageDownloader_DownloadAll(t *testing.T) {
	t.Parallel()

	t.Run("downloads images into index-keyed files", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/a.png", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("png-bytes"))
		})
		mux.HandleFunc("/b", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write([]byte("jpg-bytes"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		dir := t.TempDir()
		dl := presshttp.NewImageDownloader()

		paths := dl.DownloadAll(context.Background(), []string{server.URL + "/a.png", server.URL + "/b"}, dir)

		require.Len(t, paths, 2)
		assert.Equal(t, "img_0000.png", filepath.Base(paths[0]))
		assert.Equal(t, "img_0001.jpg", filepath.Base(paths[1]))

		data, err := os.ReadFile(paths[0])
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))
	})

	t.Run("drops failed downloads without error", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/ok.jpg", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		})
		mux.HandleFunc("/missing.jpg", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		dir := t.TempDir()
		dl := presshttp.NewImageDownloader()

		paths := dl.DownloadAll(context.Background(), []string{server.URL + "/missing.jpg", server.URL + "/ok.jpg"}, dir)

		require.Len(t, paths, 1)
		assert.NotContains(t, paths, 0)
		assert.Contains(t, paths, 1)
	})

	t.Run("returns empty map for canceled context", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		dl := presshttp.NewImageDownloader()
		paths := dl.DownloadAll(ctx, []string{server.URL + "/a.jpg"}, t.TempDir())

		assert.Empty(t, paths)
	})
}

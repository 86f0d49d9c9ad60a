package httpfetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"flowtrack/pkg/webclient/httpfetch"
)

func TestFetchReturnsPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.Header.Get("User-Agent"), "Mozilla/5.0"))
		w.Header().Set("Server", "cloudflare")
		http.SetCookie(w, &http.Cookie{Name: "_ga", Value: "GA1.1"})
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><title>hi</title></html>"))
	}))
	defer srv.Close()

	client := httpfetch.New(httpfetch.Options{Timeout: 5 * time.Second})
	page, err := client.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, page.StatusCode)
	require.Equal(t, "cloudflare", page.Header.Get("Server"))
	require.Len(t, page.Cookies, 1)
	require.Equal(t, "_ga", page.Cookies[0].Name)
	require.Contains(t, string(page.Body), "<title>hi</title>")
}

func TestFetchFollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("landed"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := httpfetch.New(httpfetch.Options{Timeout: 5 * time.Second})
	page, err := client.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, page.StatusCode)
	require.Equal(t, srv.URL+"/final", page.URL)
	require.Equal(t, "landed", string(page.Body))
}

func TestFetchTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	client := httpfetch.New(httpfetch.Options{Timeout: 50 * time.Millisecond})
	_, err := client.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestFetchCapsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
	}))
	defer srv.Close()

	client := httpfetch.New(httpfetch.Options{Timeout: 5 * time.Second, MaxBodyBytes: 100})
	page, err := client.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, page.Body, 100)
}

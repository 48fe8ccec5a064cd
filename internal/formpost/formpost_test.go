package formpost_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alovak/merchant-gateways/internal/formpost"
	"github.com/stretchr/testify/require"
)

func TestPost(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	var gotContentLength int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotContentType = r.Header.Get("Content-Type")
		gotContentLength = r.ContentLength
		w.Write([]byte("pong"))
	}))
	defer srv.Close()

	client := formpost.NewClient(formpost.DefaultConfig())

	resp, err := client.Post(context.Background(), srv.URL, []byte("x_login=demo&x_amount=1.00"))
	require.NoError(t, err)
	require.Equal(t, "pong", string(resp))
	require.Equal(t, "x_login=demo&x_amount=1.00", string(gotBody))
	require.Equal(t, "application/x-www-form-urlencoded; charset=utf-8", gotContentType)
	require.Equal(t, int64(len(gotBody)), gotContentLength)
}

func TestPostNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := formpost.NewClient(formpost.DefaultConfig())

	_, err := client.Post(context.Background(), srv.URL, []byte("x=1"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "502")
}

func TestPostDoesNotFollowRedirects(t *testing.T) {
	redirected := false

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/elsewhere" {
			redirected = true
			w.Write([]byte("followed"))
			return
		}
		http.Redirect(w, r, srv.URL+"/elsewhere", http.StatusFound)
	}))
	defer srv.Close()

	client := formpost.NewClient(formpost.DefaultConfig())

	// The 302 itself surfaces as a non-2xx error; the redirect target is
	// never fetched.
	_, err := client.Post(context.Background(), srv.URL, []byte("x=1"))
	require.Error(t, err)
	require.False(t, redirected)
}

func TestPostConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := formpost.NewClient(formpost.DefaultConfig())

	_, err := client.Post(context.Background(), srv.URL, []byte("x=1"))
	require.Error(t, err)
}

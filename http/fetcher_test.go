package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	randoqahttp "github.com/mbonnet/randoqa/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(nethttp.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("<html><body>Galerie</body></html>"))
	}))
	defer srv.Close()

	f := randoqahttp.NewFetcher()
	defer f.Close()

	html, err := f.Fetch(context.Background(), srv.URL+"/2024")
	require.NoError(t, err)
	assert.Contains(t, html, "Galerie")

	_, err = f.Fetch(context.Background(), srv.URL+"/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

package ingestion

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<nav>Menu</nav>
			<main><h1>Ada Lovelace</h1><p>ada@example.com</p></main>
		</body></html>`))
	}))
	defer server.Close()

	text, meta, err := IngestFromURL(context.Background(), server.URL, false, false)
	require.NoError(t, err)
	assert.Contains(t, text, "Ada Lovelace")
	assert.Contains(t, text, "ada@example.com")
	assert.NotContains(t, text, "Menu")

	require.NotNil(t, meta)
	assert.Equal(t, server.URL, meta.URL)
	assert.NotZero(t, meta.Words)
}

func TestIngestFromURL_HTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, _, err := IngestFromURL(context.Background(), server.URL, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}

func TestIngestURLs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "<html><body><main>Page %s</main></body></html>", r.URL.Path)
	}))
	defer server.Close()

	urls := []string{server.URL + "/a", server.URL + "/b"}
	texts, err := IngestURLs(context.Background(), urls, false, false)
	require.NoError(t, err)
	require.Len(t, texts, 2)
	assert.Contains(t, texts[urls[0]], "Page /a")
	assert.Contains(t, texts[urls[1]], "Page /b")
}

func TestIngestURLs_OneFailureFailsBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("<html><body><main>ok</main></body></html>"))
	}))
	defer server.Close()

	_, err := IngestURLs(context.Background(), []string{server.URL + "/ok", server.URL + "/bad"}, false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/bad")
}

package chat

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFetchAndExtractStripsHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><p>visible text</p><script>hidden()</script></body></html>"))
	}))
	defer server.Close()

	text := NewFetcher().FetchAndExtract(server.URL)
	assert.Contains(t, text, "visible text")
	assert.NotContains(t, text, "hidden()")
}

func TestFetchAndExtractTruncates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<p>" + strings.Repeat("a", maxFetchedChars*2) + "</p>"))
	}))
	defer server.Close()

	text := NewFetcher().FetchAndExtract(server.URL)
	assert.Len(t, text, maxFetchedChars)
}

func TestFetchAndExtractTruncatesOnRuneBoundary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<p>" + strings.Repeat("é", maxFetchedChars*2) + "</p>"))
	}))
	defer server.Close()

	text := NewFetcher().FetchAndExtract(server.URL)
	assert.True(t, utf8.ValidString(text), "truncation must not cut a rune in half")
	assert.Equal(t, maxFetchedChars, utf8.RuneCountInString(text))
}

func TestFetchAndExtractBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	text := NewFetcher().FetchAndExtract(server.URL)
	assert.True(t, strings.HasPrefix(text, "[fetch_error]"), "got: %s", text)
}

func TestFetchAndExtractUnreachable(t *testing.T) {
	text := NewFetcher().FetchAndExtract("http://127.0.0.1:1/unreachable")
	assert.True(t, strings.HasPrefix(text, "[fetch_error]"), "got: %s", text)
}

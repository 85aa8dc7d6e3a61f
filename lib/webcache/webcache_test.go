package webcache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	cache := Cache{Root: "/cache"}

	testCases := []struct {
		url      string
		expected string
	}{
		{
			url:      "https://www.handbook.unsw.edu.au/undergraduate/courses/2025/COMP1511",
			expected: "/cache/www.handbook.unsw.edu.au/undergraduate/courses/2025/COMP1511.html",
		},
		{
			url:      "http://timetable.unsw.edu.au/2025/COMPKENS.html",
			expected: "/cache/timetable.unsw.edu.au/2025/COMPKENS.html",
		},
		{
			url:      "https://www.handbook.unsw.edu.au/",
			expected: "/cache/www.handbook.unsw.edu.au/index.html",
		},
		{
			url:      "https://www.handbook.unsw.edu.au/search?q=COMP",
			expected: "/cache/www.handbook.unsw.edu.au/search_q=COMP.html",
		},
	}

	for _, test := range testCases {
		path, err := cache.Path(test.url)
		require.NoError(t, err)
		require.Equal(t, filepath.FromSlash(test.expected), path)
	}

	_, err := cache.Path("not-absolute")
	require.Error(t, err)
}

func TestFetcherCachesOnMiss(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte("<html>COMP1511</html>"))
	}))
	defer server.Close()

	cache, err := New(t.TempDir())
	require.NoError(t, err)
	fetcher := NewFetcher(cache, resty.New())

	url := server.URL + "/undergraduate/courses/2025/COMP1511"

	body, err := fetcher.Get(context.Background(), url)
	require.NoError(t, err)
	require.Equal(t, "<html>COMP1511</html>", string(body))
	require.Equal(t, 1, requests)

	// second read must come from cache
	body, err = fetcher.Get(context.Background(), url)
	require.NoError(t, err)
	require.Equal(t, "<html>COMP1511</html>", string(body))
	require.Equal(t, 1, requests)

	// and survive a fresh fetcher reading from the same tree
	fresh := NewFetcher(cache, resty.New())
	body, err = fresh.Get(context.Background(), url)
	require.NoError(t, err)
	require.Equal(t, "<html>COMP1511</html>", string(body))
	require.Equal(t, 1, requests)
}

func TestFetcherRejectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	cache, err := New(t.TempDir())
	require.NoError(t, err)
	fetcher := NewFetcher(cache, resty.New())

	_, err = fetcher.Get(context.Background(), server.URL+"/undergraduate/courses/2025/ZZZZ9999")
	require.Error(t, err)

	// the error body must not have been cached
	_, err = cache.Get(context.Background(), server.URL+"/undergraduate/courses/2025/ZZZZ9999")
	require.Error(t, err)
}

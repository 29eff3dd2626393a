package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestMainPage(t *testing.T) {
	ts := setupTestServer(t)

	w := get(t, ts.handler, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>main</h1>", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestStaticFiles(t *testing.T) {
	ts := setupTestServer(t)

	w := get(t, ts.handler, "/login.html")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>login</h1>", w.Body.String())

	w = get(t, ts.handler, "/missing.html")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUsersFileIsNeverServed(t *testing.T) {
	ts := setupTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(ts.staticDir, "users.txt"), []byte("a@b.c,A,hash\n"), 0o600))

	for _, path := range []string{"/users.txt", "/./users.txt", "/x/../users.txt"} {
		w := get(t, ts.handler, path)
		assert.NotEqual(t, http.StatusOK, w.Code, path)
		assert.NotContains(t, w.Body.String(), "hash", path)
	}
}

func TestRegisterRequiresPost(t *testing.T) {
	ts := setupTestServer(t)

	w := get(t, ts.handler, "/register")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tana/internal/adapters/httpapi"
	"go.trai.ch/tana/internal/adapters/logger"
	"go.trai.ch/tana/internal/adapters/metrics"
	"go.trai.ch/tana/internal/adapters/notify"
	"go.trai.ch/tana/internal/adapters/store"
	"go.trai.ch/tana/internal/core/domain"
)

func newServer(t *testing.T) (*httpapi.Server, *store.Store) {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), domain.IndexFileName), 50*time.Millisecond, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	lg := logger.New()
	hub := notify.NewHub(lg)

	registry := prometheus.NewRegistry()
	metrics.NewRecorder().Register(registry)

	return httpapi.NewServer(":0", st, hub, lg, registry), st
}

func seed(st *store.Store) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	st.Set("one-piece", domain.CollectionRecord{
		Path:          "/library/one-piece",
		CreatedAt:     now,
		LastUpdated:   now,
		CBZFiles:      []string{"c001.cbz", "c002.cbz"},
		TotalChapters: 2,
	})
	st.Set("berserk", domain.CollectionRecord{
		Path:          "/library/berserk",
		CreatedAt:     now,
		LastUpdated:   now,
		CBZFiles:      []string{"c364.cbz"},
		TotalChapters: 1,
	})
}

func get(t *testing.T, srv *httpapi.Server, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestServer_Healthz(t *testing.T) {
	srv, st := newServer(t)
	seed(st)

	w := get(t, srv, "/healthz", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 2, body["collections"])
}

func TestServer_Library(t *testing.T) {
	srv, st := newServer(t)
	seed(st)

	w := get(t, srv, "/api/library", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get("ETag"))

	var body struct {
		Collections []struct {
			ID            string   `json:"id"`
			CBZFiles      []string `json:"cbz_files"`
			TotalChapters int      `json:"total_chapters"`
		} `json:"collections"`
		Count         int `json:"count"`
		TotalChapters int `json:"total_chapters"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, 2, body.Count)
	assert.Equal(t, 3, body.TotalChapters)
	// Sorted by id.
	require.Len(t, body.Collections, 2)
	assert.Equal(t, "berserk", body.Collections[0].ID)
	assert.Equal(t, "one-piece", body.Collections[1].ID)
	assert.Equal(t, []string{"c001.cbz", "c002.cbz"}, body.Collections[1].CBZFiles)
}

func TestServer_LibraryETagNotModified(t *testing.T) {
	srv, st := newServer(t)
	seed(st)

	first := get(t, srv, "/api/library", nil)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	second := get(t, srv, "/api/library", http.Header{"If-None-Match": []string{etag}})

	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Empty(t, second.Body.Bytes())
}

func TestServer_LibraryETagChangesWithContent(t *testing.T) {
	srv, st := newServer(t)
	seed(st)

	first := get(t, srv, "/api/library", nil)
	etag := first.Header().Get("ETag")

	st.Delete("berserk")

	second := get(t, srv, "/api/library", http.Header{"If-None-Match": []string{etag}})

	assert.Equal(t, http.StatusOK, second.Code)
	assert.NotEqual(t, etag, second.Header().Get("ETag"))
}

func TestServer_Collection(t *testing.T) {
	srv, st := newServer(t)
	seed(st)

	w := get(t, srv, "/api/library/one-piece", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ID       string   `json:"id"`
		Path     string   `json:"path"`
		CBZFiles []string `json:"cbz_files"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "one-piece", body.ID)
	assert.Equal(t, "/library/one-piece", body.Path)
}

func TestServer_CollectionNotFound(t *testing.T) {
	srv, st := newServer(t)
	seed(st)

	w := get(t, srv, "/api/library/nonexistent", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrCollectionNotFound.Error())
}

func TestServer_Metrics(t *testing.T) {
	srv, _ := newServer(t)

	w := get(t, srv, "/metrics", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tana_scans_total")
}

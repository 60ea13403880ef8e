package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/projects"
)

func TestAPIProjects(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := do(s, http.MethodGet, "/api/projects", nil, map[string]string{"Origin": "https://other.test"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var snap projects.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.False(t, snap.IsLoading)
	require.Len(t, snap.Projects, 3)
	assert.Equal(t, "alpha", snap.Projects[0].Slug)
}

func TestAPIProject(t *testing.T) {
	s := newTestServer(t, Options{})

	rec := get(s, "/api/projects/alpha")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp projectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Alpha Mail", resp.Project.Title)
	assert.Equal(t, "gamma", resp.Previous)
	assert.Equal(t, "beta", resp.Next)
	assert.Equal(t, 1, resp.Position)
	assert.Equal(t, 3, resp.Total)

	rec = get(s, "/api/projects/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPIProjectWhileLoading(t *testing.T) {
	loading := projects.NewProvider(projects.SourceFunc(func(context.Context) ([]projects.Project, error) {
		return nil, nil
	}), nil)
	s := newTestServer(t, Options{Provider: loading})

	rec := get(s, "/api/projects/alpha")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	rec = get(s, "/api/projects")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_loading":true`)
}

func TestCORSConfig(t *testing.T) {
	cfg := corsConfig([]string{"*"})
	assert.True(t, cfg.AllowAllOrigins)
	assert.Empty(t, cfg.AllowOrigins)

	cfg = corsConfig([]string{"https://a.test", "https://b.test"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.AllowOrigins)

	assert.True(t, corsConfig(nil).AllowAllOrigins)
}

//go:build integration

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v
package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"menucatalog/internal/config"
	"menucatalog/internal/dto"
	"menucatalog/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func setupServer(t *testing.T, rateLimit int) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("menu_e2e"),
		tcPostgres.WithUsername("menu"),
		tcPostgres.WithPassword("menu"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(pgC) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(rdC) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:                  8000,
		Env:                   "test",
		RateLimitPerMinute:    rateLimit,
		DatabaseURL:           pgURL,
		DBQueryTimeoutSeconds: 5,
		RedisURL:              rdURL,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL, infra.PoolConfig{})
	require.NoError(t, err)
	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	srv := httptest.NewServer(New(cfg, db, rdb))
	t.Cleanup(srv.Close)
	return srv
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_MenuItemLifecycle(t *testing.T) {
	srv := setupServer(t, 1000)

	// Empty menu
	resp := do(t, srv, http.MethodGet, "/v1/menu-items", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.MenuItemResponse
	decodeJSON(t, resp, &list)
	assert.Empty(t, list)

	// Create
	resp = do(t, srv, http.MethodPost, "/v1/menu-items", jsonBody(t, map[string]any{
		"name":        "Pasta Carbonara",
		"description": "Creamy pasta with pancetta",
		"price":       15.99,
		"category":    "Main Course",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.MenuItemResponse
	decodeJSON(t, resp, &created)
	assert.Equal(t, 15.99, created.Price)
	assert.Equal(t, "In Stock", string(created.Availability))

	// Fetch equals created
	resp = do(t, srv, http.MethodGet, fmt.Sprintf("/v1/menu-items/%d", created.ID), nil)
	var fetched dto.MenuItemResponse
	decodeJSON(t, resp, &fetched)
	assert.Equal(t, created.Name, fetched.Name)
	assert.Equal(t, created.Description, fetched.Description)
	assert.Equal(t, created.Price, fetched.Price)
	assert.True(t, created.CreatedAt.Equal(fetched.CreatedAt))
	assert.True(t, created.UpdatedAt.Equal(fetched.UpdatedAt))

	// Partial update: price only
	resp = do(t, srv, http.MethodPatch, fmt.Sprintf("/v1/menu-items/%d", created.ID),
		bytes.NewBufferString(`{"price": 25.50}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated dto.MenuItemResponse
	decodeJSON(t, resp, &updated)
	assert.Equal(t, 25.50, updated.Price)
	assert.Equal(t, "Main Course", string(updated.Category))
	assert.Equal(t, created.Description, updated.Description)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	// Clear description
	resp = do(t, srv, http.MethodPatch, fmt.Sprintf("/v1/menu-items/%d", created.ID),
		bytes.NewBufferString(`{"description": null}`))
	var cleared dto.MenuItemResponse
	decodeJSON(t, resp, &cleared)
	assert.Nil(t, cleared.Description)
	assert.Equal(t, 25.50, cleared.Price)

	// Validation
	resp = do(t, srv, http.MethodPost, "/v1/menu-items", jsonBody(t, map[string]any{
		"name": "", "description": nil, "price": 3, "category": "Drink",
	}))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	// Delete, then absent
	resp = do(t, srv, http.MethodDelete, fmt.Sprintf("/v1/menu-items/%d", created.ID), nil)
	var del dto.DeleteMenuItemResponse
	decodeJSON(t, resp, &del)
	assert.True(t, del.Success)

	resp = do(t, srv, http.MethodGet, fmt.Sprintf("/v1/menu-items/%d", created.ID), nil)
	var absent *dto.MenuItemResponse
	decodeJSON(t, resp, &absent)
	assert.Nil(t, absent)

	resp = do(t, srv, http.MethodPatch, "/v1/menu-items/99999", bytes.NewBufferString(`{"name":"X"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &absent)
	assert.Nil(t, absent)
}

func TestE2E_HealthAndSharedRateLimit(t *testing.T) {
	srv := setupServer(t, 3)

	resp := do(t, srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var health dto.HealthResponse
	decodeJSON(t, resp, &health)
	assert.True(t, health.OK)
	assert.Equal(t, "connected", health.DB)
	assert.Equal(t, "connected", health.Redis)

	for i := 0; i < 2; i++ {
		resp = do(t, srv, http.MethodGet, "/v1/menu-items", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
	resp = do(t, srv, http.MethodGet, "/v1/menu-items", nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	resp.Body.Close()
}

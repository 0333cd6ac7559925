package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passwiz/passwiz-go/internal/config"
	"github.com/passwiz/passwiz-go/internal/generator"
)

func testConfig() config.Config {
	return config.Config{Port: "0", RateLimitRPS: 100, RateLimitBurst: 100}
}

func TestRouter_Health(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := httptest.NewServer(NewRouter(ctx, testConfig(), generator.NewFastSource(1, 2)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_Generate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := httptest.NewServer(NewRouter(ctx, testConfig(), generator.NewFastSource(1, 2)))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/generate", "application/json", strings.NewReader(`{"length": 10}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_RateLimited(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	router := NewRouter(ctx, cfg, generator.NewFastSource(1, 2))

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil)
		req.RemoteAddr = "192.0.2.1:5000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, testConfig(), generator.NewFastSource(1, 2))
	assert.NoError(t, err)
}

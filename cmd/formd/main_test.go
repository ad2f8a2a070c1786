package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/webform"
)

func testConfig() appConfig {
	return appConfig{
		Env:       "development",
		MountPath: "/signup",
		Webform:   webform.DefaultConfig(),
		HTTP: serverConfig{
			Addr:            "127.0.0.1:0",
			ShutdownTimeout: time.Second,
		},
	}
}

func TestDefaultDefinition(t *testing.T) {
	t.Parallel()

	def, err := loadDefinition("")
	require.NoError(t, err)
	assert.Equal(t, "signup", def.Name)

	_, err = def.Compile(nil)
	require.NoError(t, err)
}

func TestRouter(t *testing.T) {
	t.Parallel()

	def, err := loadDefinition("")
	require.NoError(t, err)
	router, err := newRouter(testConfig(), def, logger.Nop())
	require.NoError(t, err)

	t.Run("root redirects to the form", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/signup", rec.Header().Get("Location"))
	})

	t.Run("form page", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/signup", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `<input id="username"`)
		assert.Contains(t, rec.Body.String(), "/signup/validate")
	})

	t.Run("rejected submit", func(t *testing.T) {
		t.Parallel()
		form := url.Values{"email": {"me@example.com"}, "username": {"me"}, "password": {"secret-pass"}, "plan": {"pro"}}
		req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "At least 3 characters</p>")
	})

	t.Run("accepted submit", func(t *testing.T) {
		t.Parallel()
		form := url.Values{"email": {"me@example.com"}, "username": {"gopher"}, "password": {"secret-pass"}, "plan": {"free"}}
		req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Thank you!")
	})
}

func TestServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, testConfig().HTTP, http.NotFoundHandler(), logger.Nop()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestLoadDefinitionMissingFile(t *testing.T) {
	t.Parallel()

	_, err := loadDefinition("/nonexistent/form.yaml")
	require.Error(t, err)
}

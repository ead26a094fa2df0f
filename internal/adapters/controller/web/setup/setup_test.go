package setup

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Badsnus/golf-stats/cmd/app"
	"github.com/Badsnus/golf-stats/internal/adapters/config"
	"github.com/Badsnus/golf-stats/internal/adapters/controller/web/handlers/middlewares"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSetupServesSampleData(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		Settings: config.Settings{Timezone: "UTC"},
		Service: config.Service{
			Database: config.Database{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "golf.db")},
		},
		Handicap: config.Handicap{Window: 20, Best: 8, Factor: 1},
		Web:      config.Web{Addr: ":0", Locale: "en"},
	}
	a, err := app.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	_, err = a.Init(ctx, false)
	require.NoError(t, err)
	ids, err := a.Seed.Sample(ctx)
	require.NoError(t, err)

	engine, err := Setup(a)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/players", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice Smith")
	assert.Contains(t, w.Body.String(), "Bob Jones")
	assert.NotEmpty(t, w.Header().Get(middlewares.RequestIDHeader))

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/player/%d", ids.AliceID), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Practice round")

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/player/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

package setup

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/Badsnus/golf-stats/cmd/app"
	"github.com/Badsnus/golf-stats/internal/adapters/controller/web/handlers/middlewares"
	"github.com/Badsnus/golf-stats/internal/adapters/controller/web/handlers/players"
	"github.com/Badsnus/golf-stats/internal/domain/service"
	"github.com/Badsnus/golf-stats/pkg/logger"
	"github.com/Badsnus/golf-stats/pkg/logger/types"
)

// Setup builds the web engine on top of the application services.
func Setup(a *app.App) (*gin.Engine, error) {
	webLogger, err := logger.Named("web")
	if err != nil {
		return nil, err
	}
	if !a.Config.Settings.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	tag, err := language.Parse(a.Config.Web.Locale)
	if err != nil {
		tag = language.English
	}

	return Router(webLogger, tag, players.New(a.Stats, service.ReportToXLSX, webLogger))
}

// Router wires middlewares, templates and routes around an already built player handler.
func Router(l *types.Logger, tag language.Tag, h *players.Handler) (*gin.Engine, error) {
	tmpl, err := players.Templates(tag)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Logger(l))
	r.SetHTMLTemplate(tmpl)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	h.Setup(r)

	return r, nil
}
